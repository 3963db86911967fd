package dto

import (
	"time"

	"github.com/avestaexchange/avesta/internal/domain/testimonial"
)

type TestimonialRequest struct {
	Name     string `json:"name" binding:"required" validate:"required,max=100"`
	Role     string `json:"role" binding:"required" validate:"required,max=100"`
	Content  string `json:"content" binding:"required" validate:"required,max=2000"`
	Image    string `json:"image" validate:"omitempty,url"`
	Rating   int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Language string `json:"language" binding:"required" validate:"required,oneof=en fa"`
	IsActive *bool  `json:"isActive"`
}

type TestimonialResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	Rating    int       `json:"rating"`
	Language  string    `json:"language"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r TestimonialRequest) Details() testimonial.Details {
	return testimonial.Details{
		Name:     r.Name,
		Role:     r.Role,
		Content:  r.Content,
		Image:    r.Image,
		Rating:   r.Rating,
		Language: r.Language,
	}
}

func ToTestimonialResponse(t *testimonial.Testimonial) *TestimonialResponse {
	return &TestimonialResponse{
		ID:        t.ID(),
		Name:      t.Name(),
		Role:      t.Role(),
		Content:   t.Content(),
		Image:     t.Image(),
		Rating:    t.Rating(),
		Language:  t.Language(),
		IsActive:  t.IsActive(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func ToTestimonialResponses(items []*testimonial.Testimonial) []*TestimonialResponse {
	out := make([]*TestimonialResponse, 0, len(items))
	for _, t := range items {
		out = append(out, ToTestimonialResponse(t))
	}
	return out
}
