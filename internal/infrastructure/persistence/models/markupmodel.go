package models

import (
	"time"

	"github.com/avestaexchange/avesta/internal/shared/constants"
)

// MarkupModel is the persistence model for operator markups.
// Pair is the unique key used by the upsert.
type MarkupModel struct {
	ID            uint    `gorm:"primarykey"`
	Pair          string  `gorm:"uniqueIndex:uk_markups_pair;not null;size:7"`
	BaseCurrency  string  `gorm:"not null;size:3;index:idx_markups_base"`
	QuoteCurrency string  `gorm:"not null;size:3"`
	BaseRate      float64 `gorm:"not null;default:0"`
	BuyMarkup     float64 `gorm:"not null;default:0"`
	SellMarkup    float64 `gorm:"not null;default:0"`
	BuyRate       float64 `gorm:"not null;default:0"`
	SellRate      float64 `gorm:"not null;default:0"`
	IsActive      bool    `gorm:"not null;index:idx_markups_active"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (MarkupModel) TableName() string {
	return constants.TableMarkups
}
