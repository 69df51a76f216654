package config

import (
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type JWTConfig struct {
	SecretKey  []byte
	Issuer     string
	SessionTTL time.Duration
}

var (
	jwtConfig JWTConfig
	jwtOnce   sync.Once
)

// LoadJWTConfig reads the signing configuration once. Session tokens are
// valid for 7 days; there is no refresh flow, expiry forces re-login.
func LoadJWTConfig() JWTConfig {
	jwtOnce.Do(func() {
		LoadEnv()

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			logrus.Fatal("JWT_SECRET environment variable is not set")
		}

		issuer := os.Getenv("JWT_ISSUER")
		if issuer == "" {
			issuer = "nummix-admin"
		}

		ttl := 7 * 24 * time.Hour
		if ttlStr := os.Getenv("JWT_SESSION_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				ttl = parsed
			} else {
				logrus.Warnf("invalid JWT_SESSION_TTL value %q, using default %s", ttlStr, ttl)
			}
		}

		jwtConfig = JWTConfig{
			SecretKey:  []byte(secret),
			Issuer:     issuer,
			SessionTTL: ttl,
		}
	})

	return jwtConfig
}
