package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and optionally a
// config file. Environment variables use the SAVOR_ prefix with
// underscores for nesting (e.g. SAVOR_DATABASE_URI) and take precedence
// over file values. Returns a validated Config or an error.
func Load() (*Config, error) {
	v := viper.New()

	// The prefix and replacer must be in place before keys are bound.
	v.SetEnvPrefix("SAVOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything can come from the
		// environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3010)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("database.name", "savor")

	// Twelve hours, matching the default token expiry window.
	v.SetDefault("auth.token_lifetime_minutes", 720)

	v.SetDefault("storage.use_ssl", false)
	v.SetDefault("storage.bucket", "savor-uploads")

	v.SetDefault("upload.max_bytes", int64(50*1024*1024))
	v.SetDefault("upload.file_types", []string{"images"})

	// Bind nested keys explicitly so AutomaticEnv sees them even when
	// no config file supplies the section.
	for _, key := range []string{
		"server.port", "server.log_level",
		"database.uri", "database.name",
		"auth.jwt_secret", "auth.token_lifetime_minutes",
		"storage.endpoint", "storage.access_key", "storage.secret_key",
		"storage.bucket", "storage.use_ssl", "storage.public_url",
		"upload.max_bytes", "upload.file_types",
	} {
		if err := v.BindEnv(key); err != nil {
			// BindEnv only errors on an empty key, which cannot happen here.
			continue
		}
	}
}
