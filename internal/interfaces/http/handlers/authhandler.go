package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avestaexchange/avesta/internal/application/user/dto"
	"github.com/avestaexchange/avesta/internal/infrastructure/auth"
	"github.com/avestaexchange/avesta/internal/shared/constants"
	"github.com/avestaexchange/avesta/internal/shared/errors"
	"github.com/avestaexchange/avesta/internal/shared/logger"
	"github.com/avestaexchange/avesta/internal/shared/utils"
)

type loginUseCase interface {
	Execute(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type tokenRefresher interface {
	Refresh(refreshToken string) (*auth.TokenPair, error)
}

type currentUserReader interface {
	Get(ctx context.Context, id uint) (*dto.UserResponse, error)
}

type AuthHandler struct {
	loginUseCase loginUseCase
	tokens       tokenRefresher
	users        currentUserReader
	logger       logger.Interface
}

func NewAuthHandler(loginUC loginUseCase, tokens tokenRefresher, users currentUserReader, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUseCase: loginUC,
		tokens:       tokens,
		users:        users,
		logger:       logger,
	}
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		h.logger.Warnw("login failed", "error", err, "email", utils.MaskEmail(req.Email), "ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

// RefreshToken handles POST /api/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("refresh token is required"))
		return
	}

	pair, err := h.tokens.Refresh(req.RefreshToken)
	if err != nil {
		h.logger.Warnw("token refresh failed", "error", err)
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid or expired refresh token"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed successfully", pair)
}

// GetCurrentUser handles GET /api/auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	current, err := h.users.Get(c.Request.Context(), userID.(uint))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", current)
}
