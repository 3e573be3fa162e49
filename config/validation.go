package config

import (
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable. Production
// additionally requires a real JWT secret and a database password.
func ValidateConfig(cfg *Config, env Environment) error {
	required := map[string]string{
		"ServerPort": cfg.ServerPort,
		"DBHost":     cfg.DBHost,
		"DBPort":     cfg.DBPort,
		"DBUser":     cfg.DBUser,
		"DBName":     cfg.DBName,
		"RedisHost":  cfg.RedisHost,
		"RedisPort":  cfg.RedisPort,
		"JWTSecret":  cfg.JWTSecret,
	}
	for field, value := range required {
		if value == "" {
			return ValidationError{Field: field, Message: "must not be empty"}
		}
	}

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return ValidationError{Field: "ServerPort", Message: "must be numeric"}
	}

	if env == Production {
		if cfg.JWTSecret == "dev-secret" {
			return ValidationError{Field: "JWTSecret", Message: "development secret not allowed in production"}
		}
		if cfg.DBPassword == "" {
			return ValidationError{Field: "DBPassword", Message: "must not be empty in production"}
		}
		if cfg.DemoMode {
			return ValidationError{Field: "DemoMode", Message: "demo mode not allowed in production"}
		}
	}

	return nil
}
