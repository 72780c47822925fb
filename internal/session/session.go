package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"millage/internal/common"
	"millage/internal/models"
)

type ctxKey struct{}

// WithUser stores the session user on the request context.
func WithUser(ctx context.Context, user *models.CurrentUser) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// FromContext returns the session user, or nil for an anonymous request.
func FromContext(ctx context.Context) *models.CurrentUser {
	user, _ := ctx.Value(ctxKey{}).(*models.CurrentUser)
	return user
}

type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	UnitID   int64  `json:"unitId"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a shared HMAC secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (c *Codec) Issue(user models.CurrentUser, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.UserID,
		Username: user.Username,
		UnitID:   user.UnitID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return tokenString, nil
}

func (c *Codec) Parse(tokenString string) (*models.CurrentUser, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}

	if !token.Valid || claims.UserID == 0 {
		return nil, fmt.Errorf("%w: invalid session token", common.ErrUnauthorized)
	}

	return &models.CurrentUser{
		UserID:   claims.UserID,
		Username: claims.Username,
		UnitID:   claims.UnitID,
		Role:     claims.Role,
	}, nil
}
