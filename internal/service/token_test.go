package service_test

import (
	"testing"
	"time"

	"github.com/dom/notes-api/internal/config"
	"github.com/dom/notes-api/internal/domain"
	"github.com/dom/notes-api/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenOnlyService(secret string, ttlHours int) *service.AuthService {
	cfg := &config.Config{JWTSecret: secret, TokenTTLHours: ttlHours}
	return service.NewAuthService(nil, cfg)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := tokenOnlyService("round-trip-secret", 0)
	userID := uuid.New()

	token, err := svc.IssueToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := tokenOnlyService("the-real-secret", 0)
	userID := uuid.New()

	validToken, err := svc.IssueToken(userID)
	require.NoError(t, err)

	otherSecret := tokenOnlyService("a-different-secret", 0)
	foreignToken, err := otherSecret.IssueToken(userID)
	require.NoError(t, err)

	// Token with an id claim that is not a uuid.
	badClaims := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "not-a-uuid"})
	badIDToken, err := badClaims.SignedString([]byte("the-real-secret"))
	require.NoError(t, err)

	// Token without any id claim.
	noIDClaims := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID.String()})
	noIDToken, err := noIDClaims.SignedString([]byte("the-real-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "random bytes", token: "not.a.token"},
		{name: "truncated token", token: validToken[:len(validToken)/2]},
		{name: "signed with different secret", token: foreignToken},
		{name: "non-uuid id claim", token: badIDToken},
		{name: "missing id claim", token: noIDToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(tt.token)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}

func TestAuthService_TokenExpiry(t *testing.T) {
	// Default configuration issues tokens without an exp claim.
	svc := tokenOnlyService("expiry-secret", 0)
	token, err := svc.IssueToken(uuid.New())
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	_, hasExp := claims["exp"]
	assert.False(t, hasExp, "token should carry no expiry by default")

	// With a TTL configured the claim is present and in the future.
	svcTTL := tokenOnlyService("expiry-secret", 1)
	token, err = svcTTL.IssueToken(uuid.New())
	require.NoError(t, err)

	parsed, _, err = jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)
	claims = parsed.Claims.(jwt.MapClaims)
	exp, hasExp := claims["exp"].(float64)
	require.True(t, hasExp, "token should carry an expiry when TTL is set")
	assert.Greater(t, exp, float64(time.Now().Unix()))
}
