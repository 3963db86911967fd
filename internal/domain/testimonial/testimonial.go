package testimonial

import (
	"strings"
	"time"

	"github.com/avestaexchange/avesta/internal/shared/biztime"
	"github.com/avestaexchange/avesta/internal/shared/constants"
)

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = MaxRating
)

// Testimonial is a customer quote shown on the public site.
type Testimonial struct {
	id        uint
	name      string
	role      string
	content   string
	image     string
	rating    int
	language  string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

// Details carries the editable fields. A zero Rating selects DefaultRating.
type Details struct {
	Name     string
	Role     string
	Content  string
	Image    string
	Rating   int
	Language string
}

func (d Details) validate() (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Role = strings.TrimSpace(d.Role)
	d.Content = strings.TrimSpace(d.Content)
	d.Image = strings.TrimSpace(d.Image)
	if d.Name == "" || d.Role == "" || d.Content == "" {
		return d, ErrMissingFields
	}
	if !constants.IsSupportedLanguage(d.Language) {
		return d, ErrUnsupportedLanguage
	}
	if d.Rating == 0 {
		d.Rating = DefaultRating
	}
	if d.Rating < MinRating || d.Rating > MaxRating {
		return d, ErrInvalidRating
	}
	return d, nil
}

// NewTestimonial creates an active testimonial.
func NewTestimonial(details Details) (*Testimonial, error) {
	d, err := details.validate()
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	t := &Testimonial{isActive: true, createdAt: now, updatedAt: now}
	t.apply(d)
	return t, nil
}

// ReconstructTestimonial rebuilds a Testimonial from persistence.
func ReconstructTestimonial(id uint, details Details, isActive bool, createdAt, updatedAt time.Time) *Testimonial {
	t := &Testimonial{id: id, isActive: isActive, createdAt: createdAt, updatedAt: updatedAt}
	t.apply(details)
	return t
}

// Update replaces the details and visibility.
func (t *Testimonial) Update(details Details, isActive bool) error {
	d, err := details.validate()
	if err != nil {
		return err
	}
	t.apply(d)
	t.isActive = isActive
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Testimonial) apply(d Details) {
	t.name = d.Name
	t.role = d.Role
	t.content = d.Content
	t.image = d.Image
	t.rating = d.Rating
	t.language = d.Language
}

func (t *Testimonial) ID() uint { return t.id }
func (t *Testimonial) SetID(id uint) { t.id = id }
func (t *Testimonial) Name() string { return t.name }
func (t *Testimonial) Role() string { return t.role }
func (t *Testimonial) Content() string { return t.content }
func (t *Testimonial) Image() string { return t.image }
func (t *Testimonial) Rating() int { return t.rating }
func (t *Testimonial) Language() string { return t.language }
func (t *Testimonial) IsActive() bool { return t.isActive }
func (t *Testimonial) CreatedAt() time.Time { return t.createdAt }
func (t *Testimonial) UpdatedAt() time.Time { return t.updatedAt }
