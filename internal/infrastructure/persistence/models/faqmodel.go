package models

import (
	"time"

	"github.com/avestaexchange/avesta/internal/shared/constants"
)

type FAQModel struct {
	ID        uint   `gorm:"primarykey"`
	Question  string `gorm:"not null;size:500"`
	Answer    string `gorm:"type:text;not null"`
	Category  string `gorm:"size:50"`
	Language  string `gorm:"not null;size:5;default:en;index:idx_faqs_lang_active,priority:1"`
	SortOrder int    `gorm:"column:sort_order;not null;default:0"`
	IsActive  bool   `gorm:"not null;index:idx_faqs_lang_active,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FAQModel) TableName() string {
	return constants.TableFAQs
}
