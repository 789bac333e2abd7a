package supabase

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Email        string `json:"email"`
	Role         string `json:"role"`
	UserMetadata struct {
		Username string `json:"username"`
	} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// VerifyToken checks an access token against the project's JWT secret and
// returns the user it was issued to.
func (c *Client) VerifyToken(accessToken string) (*User, error) {
	if c.jwtSecret == nil {
		return nil, ErrVerificationUnavailable
	}

	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (any, error) {
		return c.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &User{
		ID:       claims.Subject,
		Email:    claims.Email,
		Username: claims.UserMetadata.Username,
	}, nil
}
