package testimonial

import "errors"

var (
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrMissingFields       = errors.New("name, role and content are required")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)
