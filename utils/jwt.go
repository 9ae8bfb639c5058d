package utils

import (
	"errors"
	"os"
	"time"
)

var (
	JWTSecretKey    string
	TokenExpiration time.Duration
)

// InitJWT loads the signing secret and token lifetime from the environment.
// The 7 day default matches the cookie max-age set at login.
func InitJWT() error {
	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		return errors.New("JWT_SECRET_KEY is not set")
	}

	TokenExpiration = GetEnvAsDuration("TOKEN_EXPIRATION", 7*24*time.Hour)
	return nil
}
