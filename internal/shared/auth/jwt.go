package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceRole is the role claim carried by privileged service tokens.
const ServiceRole = "service_role"

var (
	errMissingSecret = errors.New("jwt secret not configured")
	ErrInvalidToken  = errors.New("invalid token")
	ErrNotService    = errors.New("token is not a service token")
)

// ServiceClaims is the claim set of tokens presented by webhook senders.
type ServiceClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SignServiceToken signs a service-role token with HS256. A zero ttl produces a token without expiry.
func SignServiceToken(secret []byte, issuer string, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errMissingSecret
	}
	now := time.Now().UTC()
	claims := ServiceClaims{
		Role: ServiceRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyServiceToken checks the signature, expiry and role of token.
func VerifyServiceToken(token string, secret []byte) (ServiceClaims, error) {
	if len(secret) == 0 {
		return ServiceClaims{}, errMissingSecret
	}
	var claims ServiceClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ServiceClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Role != ServiceRole {
		return ServiceClaims{}, ErrNotService
	}
	return claims, nil
}
