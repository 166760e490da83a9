package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/payroll-consolidation-api/internal/config"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims domain.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() domain.Claims {
	return domain.Claims{
		UserID:     "u1",
		TenantID:   "tenant-1",
		UserRoleID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(&config.Config{Auth: config.Auth{Secret: testSecret}})

	t.Run("token válido", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims())

		claims, err := service.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "tenant-1", claims.TenantID)
		assert.Equal(t, 1, claims.UserRoleID)
	})

	t.Run("assinatura com outro segredo", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte("outro"), validClaims())

		_, err := service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token expirado", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)

		_, err := service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("token sem tenant", func(t *testing.T) {
		claims := validClaims()
		claims.TenantID = ""
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)

		_, err := service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrMissingTenant)
	})

	t.Run("token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("abc.def")

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
