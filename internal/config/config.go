package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration, sourced from the
// environment.
type Config struct {
	Port            string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	InsecureTLS     bool
	CORSOrigin      string
	StorageTimeout  time.Duration
}

// Load reads configuration from environment variables, applying defaults for
// everything except the MongoDB URI.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("MONGODB_DATABASE", "neofinance")
	v.SetDefault("MONGODB_COLLECTION", "transactions")
	v.SetDefault("MONGODB_INSECURE_TLS", false)
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("STORAGE_TIMEOUT", "5s")

	uri := v.GetString("MONGODB_URI")
	if uri == "" {
		return nil, fmt.Errorf("MONGODB_URI environment variable not set")
	}

	timeout := v.GetDuration("STORAGE_TIMEOUT")
	if timeout <= 0 {
		return nil, fmt.Errorf("STORAGE_TIMEOUT must be a positive duration, got '%s'", v.GetString("STORAGE_TIMEOUT"))
	}

	return &Config{
		Port:            v.GetString("PORT"),
		MongoURI:        uri,
		MongoDatabase:   v.GetString("MONGODB_DATABASE"),
		MongoCollection: v.GetString("MONGODB_COLLECTION"),
		InsecureTLS:     v.GetBool("MONGODB_INSECURE_TLS"),
		CORSOrigin:      v.GetString("CORS_ORIGIN"),
		StorageTimeout:  timeout,
	}, nil
}
