package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/avestaexchange/avesta/internal/domain/user"
	"github.com/avestaexchange/avesta/internal/shared/authorization"
)

type mockUserRepo struct {
	createFunc        func(ctx context.Context, u *user.User) error
	getByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	getByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	updateFunc        func(ctx context.Context, u *user.User) error
	deleteFunc        func(ctx context.Context, id uint) error
	listFunc          func(ctx context.Context) ([]*user.User, error)
	existsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	u.SetID(1)
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]*user.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) Count(context.Context) (int64, error) { return 0, nil }

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFunc != nil {
		return m.existsByEmailFunc(ctx, email)
	}
	return false, nil
}

// plainHasher prefixes passwords so tests can see what was hashed.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

func (plainHasher) Verify(p, h string) error {
	if !strings.HasPrefix(h, "hashed:") || strings.TrimPrefix(h, "hashed:") != p {
		return errors.New("mismatch")
	}
	return nil
}

type mockIssuer struct{}

func (mockIssuer) Issue(userID uint, _ string, role authorization.UserRole) (*TokenPair, error) {
	return &TokenPair{AccessToken: "access-" + role.String(), RefreshToken: "refresh", ExpiresIn: 900}, nil
}
