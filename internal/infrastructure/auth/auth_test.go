package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avestaexchange/avesta/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(7, "admin@avesta.example", authorization.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, authorization.RoleAdmin, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	pair, err := NewJWTService("secret-a", 15, 7).Generate(1, "a@b.co", authorization.RoleUser)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 15, 7).Verify(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1, TokenType: TokenTypeAccess})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTService("secret", 15, 7).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Refresh(t *testing.T) {
	svc := NewJWTService("secret", 15, 7)
	pair, err := svc.Generate(3, "u@avesta.example", authorization.RoleSuperAdmin)
	require.NoError(t, err)

	_, err = svc.Refresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken, "access tokens cannot refresh")

	next, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	claims, err := svc.Verify(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, authorization.RoleSuperAdmin, claims.Role)
}

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, h.Verify("correct horse", hash))
	assert.ErrorIs(t, h.Verify("wrong", hash), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Verify("x", "not-a-hash"), ErrPasswordMismatch)
}
