package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/fx"

	cfgpkg "github.com/espacionido/nido-backend/pkg/config"
	"github.com/espacionido/nido-backend/pkg/types"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Verifier checks a bearer token and returns its claims. Every request is
// re-verified independently; no session state is kept server-side.
type Verifier interface {
	Verify(token string) (*types.TokenClaims, error)
}

type jwtClaims struct {
	ClientID string `json:"client_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type hs256Verifier struct {
	secret []byte
}

func NewVerifier(cfg *cfgpkg.Config) Verifier {
	return &hs256Verifier{secret: []byte(cfg.Auth.JWTSecret)}
}

func (v *hs256Verifier) Verify(token string) (*types.TokenClaims, error) {
	var claims jwtClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	return &types.TokenClaims{
		UserID:   claims.Subject,
		ClientID: claims.ClientID,
		Email:    claims.Email,
		Name:     claims.Name,
		Role:     types.Role(claims.Role),
	}, nil
}

var Module = fx.Options(
	fx.Provide(NewVerifier),
)
