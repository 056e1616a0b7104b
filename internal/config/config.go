// Package config loads application configuration from environment variables.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Credential storage backends.
const (
	BackendSQLite  = "sqlite"
	BackendKeyring = "keyring"
)

// Defaults for the Gemini endpoint.
const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel   = "gemini-2.0-flash"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr        string
	DBPath            string
	SecretKey         []byte // nil when KOTRANSLATE_SECRET_KEY is unset.
	CredentialBackend string
	GeminiBaseURL     string
	GeminiModel       string
	OpenBrowser       bool
}

// Load reads configuration from environment variables and returns a validated Config.
// A .env file in the working directory is applied first; variables already set
// in the environment win over it.
// Optional variables with defaults: KOTRANSLATE_LISTEN_ADDR (127.0.0.1:8080),
// KOTRANSLATE_DB_PATH (kotranslate.db), KOTRANSLATE_CREDENTIAL_BACKEND (sqlite),
// KOTRANSLATE_GEMINI_BASE_URL, KOTRANSLATE_GEMINI_MODEL (gemini-2.0-flash),
// KOTRANSLATE_OPEN_BROWSER (true). KOTRANSLATE_SECRET_KEY is optional and must be
// 64 hex characters when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("KOTRANSLATE_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "kotranslate.db"
	if v, ok := os.LookupEnv("KOTRANSLATE_DB_PATH"); ok {
		dbPath = v
	}

	var secretKey []byte
	if v, ok := os.LookupEnv("KOTRANSLATE_SECRET_KEY"); ok && v != "" {
		key, err := hex.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("KOTRANSLATE_SECRET_KEY is not valid hex: %w", err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("KOTRANSLATE_SECRET_KEY must decode to 32 bytes, got %d", len(key))
		}
		secretKey = key
	}

	backend := BackendSQLite
	if v, ok := os.LookupEnv("KOTRANSLATE_CREDENTIAL_BACKEND"); ok && v != "" {
		backend = strings.ToLower(strings.TrimSpace(v))
	}
	if backend != BackendSQLite && backend != BackendKeyring {
		return nil, fmt.Errorf("KOTRANSLATE_CREDENTIAL_BACKEND has unknown value %q", backend)
	}

	baseURL := DefaultGeminiBaseURL
	if v, ok := os.LookupEnv("KOTRANSLATE_GEMINI_BASE_URL"); ok && v != "" {
		baseURL = strings.TrimRight(v, "/")
	}

	model := DefaultGeminiModel
	if v, ok := os.LookupEnv("KOTRANSLATE_GEMINI_MODEL"); ok && v != "" {
		model = v
	}

	openBrowser := true
	if v, ok := os.LookupEnv("KOTRANSLATE_OPEN_BROWSER"); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("KOTRANSLATE_OPEN_BROWSER has invalid boolean %q: %w", v, err)
		}
		openBrowser = parsed
	}

	return &Config{
		ListenAddr:        listenAddr,
		DBPath:            dbPath,
		SecretKey:         secretKey,
		CredentialBackend: backend,
		GeminiBaseURL:     baseURL,
		GeminiModel:       model,
		OpenBrowser:       openBrowser,
	}, nil
}

// OptionsURL returns the address of the options page served on ListenAddr.
func (c *Config) OptionsURL() string {
	return "http://" + c.ListenAddr + "/options"
}
