package faq

import "context"

// Repository defines the interface for FAQ persistence.
// Lists are ordered by display order ascending, then newest first.
type Repository interface {
	Create(ctx context.Context, faq *FAQ) error
	GetByID(ctx context.Context, id uint) (*FAQ, error)
	Update(ctx context.Context, faq *FAQ) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*FAQ, error)
	ListActiveByLanguage(ctx context.Context, language string) ([]*FAQ, error)
	Count(ctx context.Context) (int64, error)
}
