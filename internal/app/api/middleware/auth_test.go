package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/espacionido/nido-backend/pkg/types"
)

type fakeVerifier struct {
	claims *types.TokenClaims
	err    error
}

func (f *fakeVerifier) Verify(_ string) (*types.TokenClaims, error) {
	return f.claims, f.err
}

func doAuthRequest(t *testing.T, v *fakeVerifier, role types.Role, header string) (*httptest.ResponseRecorder, *types.TokenClaims) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var seen *types.TokenClaims
	r.GET("/protected", Auth(v, role), func(c *gin.Context) {
		seen = ClaimsFrom(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, seen
}

func TestAuth_MissingHeader(t *testing.T) {
	w, _ := doAuthRequest(t, &fakeVerifier{}, types.RoleClient, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_BadScheme(t *testing.T) {
	w, _ := doAuthRequest(t, &fakeVerifier{}, types.RoleClient, "Basic abc")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	v := &fakeVerifier{err: errors.New("expired")}
	w, _ := doAuthRequest(t, v, types.RoleClient, "Bearer bad")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongRole(t *testing.T) {
	v := &fakeVerifier{claims: &types.TokenClaims{UserID: "u1", Role: types.RoleClient}}
	w, _ := doAuthRequest(t, v, types.RoleAdmin, "Bearer ok")
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuth_PassesAndStoresClaims(t *testing.T) {
	claims := &types.TokenClaims{UserID: "u1", ClientID: "c1", Role: types.RoleClient}
	w, seen := doAuthRequest(t, &fakeVerifier{claims: claims}, types.RoleClient, "Bearer ok")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, claims, seen)
}

func TestAuth_AnyRoleWhenEmpty(t *testing.T) {
	claims := &types.TokenClaims{UserID: "u1", Role: types.RoleAdmin}
	w, _ := doAuthRequest(t, &fakeVerifier{claims: claims}, "", "Bearer ok")
	require.Equal(t, http.StatusOK, w.Code)
}
