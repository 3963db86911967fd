package faq

import "errors"

var (
	ErrFAQNotFound         = errors.New("faq not found")
	ErrMissingFields       = errors.New("question, answer and category are required")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
