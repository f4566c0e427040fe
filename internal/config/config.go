package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Backend names accepted in STATE_BACKEND.
const (
	BackendMemory = "memory"
	BackendBolt   = "bolt"
)

type Config struct {
	WAAccessToken   string
	WAPhoneNumberID string
	WAVerifyToken   string

	StateBackend string
	DataDir      string

	Port      string
	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	// .env is optional — env vars may already be set (e.g. in production)
	_ = godotenv.Load()

	cfg := &Config{
		WAAccessToken:   os.Getenv("WA_ACCESS_TOKEN"),
		WAPhoneNumberID: os.Getenv("WA_PHONE_NUMBER_ID"),
		WAVerifyToken:   os.Getenv("WA_VERIFY_TOKEN"),
		StateBackend:    os.Getenv("STATE_BACKEND"),
		DataDir:         os.Getenv("DATA_DIR"),
		Port:            os.Getenv("PORT"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		LogFormat:       os.Getenv("LOG_FORMAT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
	if cfg.StateBackend == "" {
		cfg.StateBackend = BackendMemory
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}

	if cfg.StateBackend != BackendMemory && cfg.StateBackend != BackendBolt {
		return nil, fmt.Errorf("unknown STATE_BACKEND %q", cfg.StateBackend)
	}

	if cfg.WAVerifyToken == "" {
		token, err := randomHex(16)
		if err != nil {
			return nil, fmt.Errorf("generating verify token: %w", err)
		}
		cfg.WAVerifyToken = token
	}

	for _, req := range []struct {
		name, val string
	}{
		{"WA_ACCESS_TOKEN", cfg.WAAccessToken},
		{"WA_PHONE_NUMBER_ID", cfg.WAPhoneNumberID},
	} {
		if req.val == "" {
			return nil, fmt.Errorf("required env var %s is not set", req.name)
		}
	}

	return cfg, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
