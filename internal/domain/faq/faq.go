package faq

import (
	"strings"
	"time"

	"github.com/avestaexchange/avesta/internal/shared/biztime"
	"github.com/avestaexchange/avesta/internal/shared/constants"
)

// FAQ is a question shown on the public site. Answers are authored in Markdown.
type FAQ struct {
	id        uint
	question  string
	answer    string
	category  string
	language  string
	order     int
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

// Content carries the editable fields of an FAQ.
type Content struct {
	Question string
	Answer   string
	Category string
	Language string
	Order    int
}

func (c Content) validate() (Content, error) {
	c.Question = strings.TrimSpace(c.Question)
	c.Answer = strings.TrimSpace(c.Answer)
	c.Category = strings.TrimSpace(c.Category)
	if c.Question == "" || c.Answer == "" || c.Category == "" {
		return c, ErrMissingFields
	}
	if !constants.IsSupportedLanguage(c.Language) {
		return c, ErrUnsupportedLanguage
	}
	return c, nil
}

// NewFAQ creates an active FAQ.
func NewFAQ(content Content) (*FAQ, error) {
	c, err := content.validate()
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &FAQ{
		question:  c.Question,
		answer:    c.Answer,
		category:  c.Category,
		language:  c.Language,
		order:     c.Order,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructFAQ rebuilds an FAQ from persistence.
func ReconstructFAQ(id uint, content Content, isActive bool, createdAt, updatedAt time.Time) *FAQ {
	return &FAQ{
		id:        id,
		question:  content.Question,
		answer:    content.Answer,
		category:  content.Category,
		language:  content.Language,
		order:     content.Order,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces the content and visibility.
func (f *FAQ) Update(content Content, isActive bool) error {
	c, err := content.validate()
	if err != nil {
		return err
	}
	f.question = c.Question
	f.answer = c.Answer
	f.category = c.Category
	f.language = c.Language
	f.order = c.Order
	f.isActive = isActive
	f.updatedAt = biztime.NowUTC()
	return nil
}

func (f *FAQ) ID() uint { return f.id }
func (f *FAQ) SetID(id uint) { f.id = id }
func (f *FAQ) Question() string { return f.question }
func (f *FAQ) Answer() string { return f.answer }
func (f *FAQ) Category() string { return f.category }
func (f *FAQ) Language() string { return f.language }
func (f *FAQ) Order() int { return f.order }
func (f *FAQ) IsActive() bool { return f.isActive }
func (f *FAQ) CreatedAt() time.Time { return f.createdAt }
func (f *FAQ) UpdatedAt() time.Time { return f.updatedAt }
