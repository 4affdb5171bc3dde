package api

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// ok is false when the token carries no expiry.
func TokenExpiry(token string) (exp time.Time, ok bool, err error) {
	claims := &jwt.StandardClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return time.Time{}, false, fmt.Errorf("parse token: %w", err)
	}

	if claims.ExpiresAt == 0 {
		return time.Time{}, false, nil
	}

	return time.Unix(claims.ExpiresAt, 0), true, nil
}

// TokenExpired reports whether token has an exp claim before now.
func TokenExpired(token string, now time.Time) (bool, error) {
	exp, ok, err := TokenExpiry(token)
	if err != nil || !ok {
		return false, err
	}
	return !now.Before(exp), nil
}
