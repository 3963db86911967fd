package testimonial

import "context"

// Repository defines the interface for testimonial persistence. Lists are newest first.
type Repository interface {
	Create(ctx context.Context, t *Testimonial) error
	GetByID(ctx context.Context, id uint) (*Testimonial, error)
	Update(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*Testimonial, error)
	ListActiveByLanguage(ctx context.Context, language string) ([]*Testimonial, error)
	Count(ctx context.Context) (int64, error)
}
