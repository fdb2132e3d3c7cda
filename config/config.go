package config

import (
	"fmt"
	"os"
	"time"
)

// Config is built once in main and passed into every component that needs it.
// No other package reads the environment.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret     []byte
	JWTExpiration time.Duration

	OIDCClientID     string
	OIDCClientSecret string
	OIDCAuthURL      string
	OIDCTokenURL     string

	MediaDir       string
	ThumbnailWidth int
}

func Load() Config {
	return Config{
		Port:             getenv("PORT", "8080"),
		DBHost:           getenv("DB_HOST", "localhost"),
		DBPort:           getenv("DB_PORT", "5432"),
		DBUser:           getenv("DB_USER", "keyeditor"),
		DBPassword:       getenv("DB_PASSWORD", ""),
		DBName:           getenv("DB_NAME", "keyeditor"),
		JWTSecret:        []byte(getenv("JWT_SECRET", "change-this-in-production")),
		JWTExpiration:    24 * time.Hour,
		OIDCClientID:     getenv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getenv("OIDC_CLIENT_SECRET", ""),
		OIDCAuthURL:      getenv("OIDC_AUTH_URL", ""),
		OIDCTokenURL:     getenv("OIDC_TOKEN_URL", ""),
		MediaDir:         getenv("MEDIA_DIR", "./media"),
		ThumbnailWidth:   128,
	}
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
