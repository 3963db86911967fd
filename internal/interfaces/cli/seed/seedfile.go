package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	faqDTO "github.com/avestaexchange/avesta/internal/application/faq/dto"
	testimonialDTO "github.com/avestaexchange/avesta/internal/application/testimonial/dto"
	"github.com/avestaexchange/avesta/internal/shared/utils"
)

// File is the content loaded by `avesta seed --file`.
type File struct {
	FAQs         []FAQEntry         `yaml:"faqs"`
	Testimonials []TestimonialEntry `yaml:"testimonials"`
}

type FAQEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	Category string `yaml:"category"`
	Language string `yaml:"language"`
	Order    int    `yaml:"order"`
	Inactive bool   `yaml:"inactive"`
}

type TestimonialEntry struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Content  string `yaml:"content"`
	Image    string `yaml:"image"`
	Rating   int    `yaml:"rating"`
	Language string `yaml:"language"`
	Inactive bool   `yaml:"inactive"`
}

func (e FAQEntry) Request() faqDTO.FAQRequest {
	active := !e.Inactive
	return faqDTO.FAQRequest{
		Question: e.Question,
		Answer:   e.Answer,
		Category: e.Category,
		Language: e.Language,
		Order:    e.Order,
		IsActive: &active,
	}
}

func (e TestimonialEntry) Request() testimonialDTO.TestimonialRequest {
	active := !e.Inactive
	return testimonialDTO.TestimonialRequest{
		Name:     e.Name,
		Role:     e.Role,
		Content:  e.Content,
		Image:    e.Image,
		Rating:   e.Rating,
		Language: e.Language,
		IsActive: &active,
	}
}

// LoadFile reads and validates a seed file.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a seed document, rejecting unknown keys and invalid entries.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i, e := range file.FAQs {
		if err := utils.ValidateStruct(e.Request()); err != nil {
			return nil, fmt.Errorf("faqs[%d]: %w", i, err)
		}
	}
	for i, e := range file.Testimonials {
		if err := utils.ValidateStruct(e.Request()); err != nil {
			return nil, fmt.Errorf("testimonials[%d]: %w", i, err)
		}
	}
	return &file, nil
}
