package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lumak-be/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(secret, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Subject)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", "admin")
	require.NoError(t, err)

	_, err = ParseToken("secret-b", token)
	assert.Error(t, err)
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	_, err := GenerateToken("", "admin")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestExtractAccessToken(t *testing.T) {
	t.Run("FromCookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
		assert.Equal(t, "cookie-token", ExtractAccessToken(r))
	})

	t.Run("FromHeader", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer header-token")
		assert.Equal(t, "header-token", ExtractAccessToken(r))
	})

	t.Run("CookieWinsOverHeader", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
		r.Header.Set("Authorization", "Bearer header-token")
		assert.Equal(t, "cookie-token", ExtractAccessToken(r))
	})

	t.Run("Missing", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, ExtractAccessToken(r))
	})
}

func TestService_Login(t *testing.T) {
	hash, err := HashPassword("shop-password")
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
	}
	svc := NewService(cfg)

	t.Run("Success", func(t *testing.T) {
		token, err := svc.Login("admin", "shop-password")
		require.NoError(t, err)

		claims, err := ParseToken(cfg.JWTSecret, token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login("admin", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("WrongUsername", func(t *testing.T) {
		_, err := svc.Login("someone", "shop-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
