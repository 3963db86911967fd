package exchangerate

import "context"

// MarkupRepository persists operator markups keyed by pair.
type MarkupRepository interface {
	// Upsert inserts the markup or, when the pair already exists, overwrites it
	// in a single statement. The stored ID is written back to the entity.
	Upsert(ctx context.Context, markup *Markup) error

	GetByID(ctx context.Context, id uint) (*Markup, error)

	GetByPair(ctx context.Context, pair string) (*Markup, error)

	// ListActive returns active markups ordered by base currency.
	ListActive(ctx context.Context) ([]*Markup, error)

	Update(ctx context.Context, markup *Markup) error

	CountActive(ctx context.Context) (int64, error)
}
