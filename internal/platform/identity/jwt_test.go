package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	cfgpkg "github.com/espacionido/nido-backend/pkg/config"
	"github.com/espacionido/nido-backend/pkg/types"
)

const testSecret = "test-secret"

func mintToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newTestVerifier() Verifier {
	return NewVerifier(&cfgpkg.Config{Auth: cfgpkg.AuthConfig{JWTSecret: testSecret}})
}

func TestVerify_ValidToken(t *testing.T) {
	token := mintToken(t, testSecret, jwtClaims{
		ClientID: "c1",
		Email:    "ana@nido.test",
		Name:     "Ana",
		Role:     "client",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := newTestVerifier().Verify(token)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, "c1", claims.ClientID)
	require.Equal(t, types.RoleClient, claims.Role)
}

func TestVerify_WrongSecret(t *testing.T) {
	token := mintToken(t, "other-secret", jwtClaims{
		Role:             "client",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	})

	_, err := newTestVerifier().Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	token := mintToken(t, testSecret, jwtClaims{
		Role: "client",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	_, err := newTestVerifier().Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MissingSubjectOrRole(t *testing.T) {
	noSubject := mintToken(t, testSecret, jwtClaims{Role: "client"})
	_, err := newTestVerifier().Verify(noSubject)
	require.ErrorIs(t, err, ErrInvalidToken)

	noRole := mintToken(t, testSecret, jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	})
	_, err = newTestVerifier().Verify(noRole)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := newTestVerifier().Verify("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
