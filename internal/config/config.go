package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var (
	// ErrEnvFileNotFound is returned when the .env file is not found
	ErrEnvFileNotFound = errors.New(".env file not found")

	// loadOnce ensures .env is loaded only once
	loadOnce sync.Once
)

// LoadEnv loads environment variables from the .env file. Variables already
// present in the environment are never overwritten.
func LoadEnv() error {
	var err error
	loadOnce.Do(func() {
		if e := godotenv.Load(); e != nil {
			if os.IsNotExist(e) {
				err = ErrEnvFileNotFound
				return
			}
			err = fmt.Errorf("error loading .env file: %w", e)
		}
	})
	return err
}

// Get retrieves an environment variable with a fallback value
func Get(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// MustGet retrieves an environment variable or panics if it's not set
func MustGet(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

// GetInt retrieves an integer environment variable with a fallback value
func GetInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return fallback
}

// GetFloat retrieves a floating-point environment variable with a fallback value
func GetFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		var result float64
		if _, err := fmt.Sscanf(value, "%g", &result); err == nil {
			return result
		}
	}
	return fallback
}

// GetBool retrieves a boolean environment variable with a fallback value
func GetBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		value = strings.ToLower(value)
		if value == "true" || value == "1" || value == "yes" || value == "y" {
			return true
		}
		if value == "false" || value == "0" || value == "no" || value == "n" {
			return false
		}
	}
	return fallback
}
