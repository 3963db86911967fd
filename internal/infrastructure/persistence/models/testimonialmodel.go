package models

import (
	"time"

	"github.com/avestaexchange/avesta/internal/shared/constants"
)

type TestimonialModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:100"`
	Role      string `gorm:"not null;size:100"`
	Content   string `gorm:"type:text;not null"`
	Image     string `gorm:"size:500"`
	Rating    int    `gorm:"not null;default:5"`
	Language  string `gorm:"not null;size:5;default:en;index:idx_testimonials_lang_active,priority:1"`
	IsActive  bool   `gorm:"not null;index:idx_testimonials_lang_active,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TestimonialModel) TableName() string {
	return constants.TableTestimonials
}

// All returns every model owned by the schema, for AutoMigrate in tests.
func All() []interface{} {
	return []interface{}{
		&MarkupModel{},
		&UserModel{},
		&FAQModel{},
		&TestimonialModel{},
	}
}
