package models

import (
	"time"

	"github.com/avestaexchange/avesta/internal/shared/constants"
)

// UserModel represents the database persistence model for back-office users
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:100"`
	Email        string `gorm:"uniqueIndex:uk_users_email;not null;size:255"`
	Role         string `gorm:"not null;default:USER;size:20"`
	PasswordHash string `gorm:"not null;size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
