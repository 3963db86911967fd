package dto

import (
	"time"

	"github.com/avestaexchange/avesta/internal/domain/faq"
)

type FAQRequest struct {
	Question string `json:"question" binding:"required" validate:"required,max=500"`
	Answer   string `json:"answer" binding:"required" validate:"required"`
	Category string `json:"category" binding:"required" validate:"required,max=100"`
	Language string `json:"language" binding:"required" validate:"required,oneof=en fa"`
	Order    int    `json:"order" validate:"gte=0"`
	IsActive *bool  `json:"isActive"`
}

type FAQResponse struct {
	ID         uint      `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	AnswerHTML string    `json:"answerHtml,omitempty"`
	Category   string    `json:"category"`
	Language   string    `json:"language"`
	Order      int       `json:"order"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (r FAQRequest) Content() faq.Content {
	return faq.Content{
		Question: r.Question,
		Answer:   r.Answer,
		Category: r.Category,
		Language: r.Language,
		Order:    r.Order,
	}
}

func ToFAQResponse(f *faq.FAQ) *FAQResponse {
	return &FAQResponse{
		ID:        f.ID(),
		Question:  f.Question(),
		Answer:    f.Answer(),
		Category:  f.Category(),
		Language:  f.Language(),
		Order:     f.Order(),
		IsActive:  f.IsActive(),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}
}
