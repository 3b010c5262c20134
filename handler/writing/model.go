package writing

import (
	"github.com/Bilal-BS/AI-english-Teacher-sub000/internal/correction"
)

type CorrectRequest struct {
	Text string `json:"text" validate:"required"`
}

type TutorCorrectionRequest struct {
	Text string `json:"text"`
}

type TutorCorrectionResponse struct {
	Code    string                        `json:"code"`
	Message string                        `json:"message"`
	Body    correction.ExternalCorrection `json:"body"`
}
