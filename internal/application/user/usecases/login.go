package usecases

import (
	"context"
	stderrors "errors"

	"github.com/avestaexchange/avesta/internal/application/user/dto"
	"github.com/avestaexchange/avesta/internal/domain/user"
	"github.com/avestaexchange/avesta/internal/shared/authorization"
	"github.com/avestaexchange/avesta/internal/shared/errors"
	"github.com/avestaexchange/avesta/internal/shared/logger"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenIssuer mints bearer tokens for an authenticated user.
type TokenIssuer interface {
	Issue(userID uint, email string, role authorization.UserRole) (*TokenPair, error)
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher user.PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

// Execute verifies credentials. Unknown email and wrong password fail the same way.
func (uc *LoginUseCase) Execute(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	invalid := errors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())

	email, err := user.NormalizeEmail(req.Email)
	if err != nil {
		return nil, invalid
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, invalid
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("Login failed")
	}

	if err := uc.hasher.Verify(req.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", u.ID())
		return nil, invalid
	}

	tokens, err := uc.tokens.Issue(u.ID(), u.Email(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("Login failed")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())
	return &dto.LoginResponse{
		User:         dto.ToUserResponse(u),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
