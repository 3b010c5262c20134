package pronunciation

type AnalyzeRequest struct {
	TargetText string `json:"targetText" validate:"required"`
	SpokenText string `json:"spokenText"`
	Mode       string `json:"mode" validate:"omitempty,oneof=general focused"`
}

type SttResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Body    SttResponseBody `json:"body"`
}

type SttResponseBody struct {
	Text string `json:"text"`
}
