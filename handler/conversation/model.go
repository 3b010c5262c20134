package conversation

import (
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/correction"
)

type ReplyRequest struct {
	SessionId string `json:"sessionId"`
	Message   string `json:"message" validate:"required"`
}

type ReplyResponse struct {
	SessionId  string                       `json:"sessionId"`
	Reply      string                       `json:"reply"`
	Topic      string                       `json:"topic"`
	Correction *correction.CorrectionResult `json:"correction,omitempty"`
}

type TutorChatRequest struct {
	SessionId string `json:"sessionId"`
	Message   string `json:"message"`
}

type TutorChatResponse struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Body    TutorChatResponseBody `json:"body"`
}

type TutorChatResponseBody struct {
	Reply string `json:"reply"`
}
