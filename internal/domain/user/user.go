package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/avestaexchange/avesta/internal/shared/authorization"
	"github.com/avestaexchange/avesta/internal/shared/biztime"
)

// User is a back-office account. The password hash never leaves the
// application layer.
type User struct {
	id           uint
	name         string
	email        string
	role         authorization.UserRole
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a user with an already hashed password.
func NewUser(name, email string, role authorization.UserRole, passwordHash string) (*User, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		name:         strings.TrimSpace(name),
		email:        normalized,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a User from persistence.
func ReconstructUser(id uint, name, email string, role authorization.UserRole, passwordHash string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// UpdateProfile changes name, email and role.
func (u *User) UpdateProfile(name, email string, role authorization.UserRole) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if !role.IsValid() {
		return ErrInvalidRole
	}
	u.name = strings.TrimSpace(name)
	u.email = normalized
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ChangePasswordHash replaces the stored hash.
func (u *User) ChangePasswordHash(hash string) {
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
}

// NormalizeEmail lowercases and validates an address.
func NormalizeEmail(email string) (string, error) {
	return normalizeEmail(email)
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func (u *User) ID() uint { return u.id }
func (u *User) SetID(id uint) { u.id = id }
func (u *User) Name() string { return u.name }
func (u *User) Email() string { return u.email }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
