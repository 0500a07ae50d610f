package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration keys
const (
	Port = "PORT"

	SupabaseURL = "SUPABASE_URL"
	SupabaseKey = "SUPABASE_KEY"

	JWTSecret     = "JWT_SECRET"
	JWTExpSeconds = "JWT_EXP_SECONDS"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Supabase SupabaseConfig
	JWT      JWTConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
}

// SupabaseConfig holds the record store endpoint and key
type SupabaseConfig struct {
	URL string
	Key string
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// LoadConfig loads configuration from environment variables and an optional
// .env file. The store endpoint, store key and signing secret are required;
// any of them missing is an error so startup fails loudly instead of
// falling back to defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault(Port, "8080")
	v.SetDefault(JWTExpSeconds, 3600)

	if err := v.ReadInConfig(); err != nil {
		// a .env file is optional; plain environment variables are enough
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var missing []string
	for _, key := range []string{SupabaseURL, SupabaseKey, JWTSecret} {
		if v.GetString(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return &Config{
		Server: ServerConfig{
			Port: v.GetString(Port),
		},
		Supabase: SupabaseConfig{
			URL: v.GetString(SupabaseURL),
			Key: v.GetString(SupabaseKey),
		},
		JWT: JWTConfig{
			Secret: v.GetString(JWTSecret),
			Expiry: time.Duration(v.GetInt(JWTExpSeconds)) * time.Second,
		},
	}, nil
}
