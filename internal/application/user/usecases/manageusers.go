package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/avestaexchange/avesta/internal/application/user/dto"
	"github.com/avestaexchange/avesta/internal/domain/user"
	"github.com/avestaexchange/avesta/internal/shared/authorization"
	"github.com/avestaexchange/avesta/internal/shared/errors"
	"github.com/avestaexchange/avesta/internal/shared/logger"
)

// ManageUsersUseCase handles back-office account CRUD.
type ManageUsersUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewManageUsersUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *ManageUsersUseCase {
	return &ManageUsersUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *ManageUsersUseCase) List(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("Failed to fetch users")
	}
	return dto.ToUserResponses(users), nil
}

func (uc *ManageUsersUseCase) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	email, err := user.NormalizeEmail(req.Email)
	if err != nil {
		return nil, errors.NewValidationError("Invalid email address")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, errors.NewInternalError("Failed to create user")
	}
	if exists {
		return nil, errors.NewConflictError("User already exists")
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("Failed to create user")
	}

	u, err := user.NewUser(req.Name, email, authorization.UserRole(req.Role), hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if stderrors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, errors.NewConflictError("User already exists")
		}
		uc.logger.Errorw("failed to create user", "email", email, "error", err)
		return nil, errors.NewInternalError("Failed to create user")
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "role", u.Role())
	return dto.ToUserResponse(u), nil
}

func (uc *ManageUsersUseCase) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.UpdateProfile(req.Name, req.Email, authorization.UserRole(req.Role)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if req.Password != "" {
		hash, err := uc.hasher.Hash(req.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("Failed to update user")
		}
		u.ChangePasswordHash(hash)
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if stderrors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, errors.NewConflictError("Email already in use")
		}
		uc.logger.Errorw("failed to update user", "user_id", id, "error", err)
		return nil, errors.NewInternalError("Failed to update user")
	}

	return dto.ToUserResponse(u), nil
}

func (uc *ManageUsersUseCase) Get(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponse(u), nil
}

func (uc *ManageUsersUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.userRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return errors.NewNotFoundError("User not found")
		}
		uc.logger.Errorw("failed to delete user", "user_id", id, "error", err)
		return errors.NewInternalError("Failed to delete user")
	}
	uc.logger.Infow("user deleted", "user_id", id)
	return nil
}

// EnsureUser creates the account when the email is unused and reports whether it did.
func (uc *ManageUsersUseCase) EnsureUser(ctx context.Context, req dto.CreateUserRequest) (bool, error) {
	_, err := uc.Create(ctx, req)
	if err == nil {
		return true, nil
	}
	if errors.IsConflictError(err) {
		return false, nil
	}
	return false, fmt.Errorf("ensure user %s: %w", req.Email, err)
}

func (uc *ManageUsersUseCase) load(ctx context.Context, id uint) (*user.User, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("User not found")
		}
		uc.logger.Errorw("failed to get user", "user_id", id, "error", err)
		return nil, errors.NewInternalError("Failed to fetch user")
	}
	return u, nil
}
