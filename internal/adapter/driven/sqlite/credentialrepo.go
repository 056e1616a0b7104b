package sqlite

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/ericfisherdev/kotranslate/internal/domain/model"
	"github.com/ericfisherdev/kotranslate/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo is the SQLite implementation of the CredentialStore port interface.
// When constructed with a key, values are sealed with AES-256-GCM before write and
// opened after read. Without a key, values are stored as given.
type CredentialRepo struct {
	db  *DB
	key []byte // 32-byte AES-256 key; nil stores plaintext.
}

// NewCredentialRepo creates a new CredentialRepo. key must be 32 bytes for AES-256-GCM,
// or nil to store the credential unsealed.
func NewCredentialRepo(db *DB, key []byte) *CredentialRepo {
	return &CredentialRepo{db: db, key: key}
}

// Set stores or replaces the API key.
func (r *CredentialRepo) Set(ctx context.Context, value string) error {
	stored := value
	sealed := 0
	if r.key != nil {
		encrypted, err := r.encrypt(value)
		if err != nil {
			return err
		}
		stored = encrypted
		sealed = 1
	}

	const query = `INSERT INTO settings (name, value, sealed, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, sealed = excluded.sealed, updated_at = excluded.updated_at`
	if _, err := r.db.Writer.ExecContext(ctx, query, model.CredentialKey, stored, sealed); err != nil {
		return fmt.Errorf("set credential %q: %w", model.CredentialKey, err)
	}
	return nil
}

// Get returns the stored API key, or ("", nil) if none exists.
func (r *CredentialRepo) Get(ctx context.Context) (string, error) {
	cred, err := r.Current(ctx)
	if err != nil {
		return "", err
	}
	if cred == nil {
		return "", nil
	}
	return cred.Value, nil
}

// Current returns the stored credential with its update time, or nil if none exists.
func (r *CredentialRepo) Current(ctx context.Context) (*model.Credential, error) {
	const query = `SELECT value, sealed, updated_at FROM settings WHERE name = ?`
	var (
		stored    string
		sealed    bool
		updatedAt string
	)
	err := r.db.Reader.QueryRowContext(ctx, query, model.CredentialKey).Scan(&stored, &sealed, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get credential %q: %w", model.CredentialKey, err)
	}

	value := stored
	if sealed {
		if r.key == nil {
			return nil, driven.ErrEncryptionKeyNotSet
		}
		value, err = r.decrypt(stored)
		if err != nil {
			return nil, fmt.Errorf("decrypt credential %q: %w", model.CredentialKey, err)
		}
	}

	ts, err := parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at for credential %q: %w", model.CredentialKey, err)
	}

	return &model.Credential{Key: model.CredentialKey, Value: value, UpdatedAt: ts}, nil
}

// encrypt encrypts plaintext using AES-256-GCM and returns a base64-encoded string
// containing the nonce (12 bytes) prepended to the ciphertext.
func (r *CredentialRepo) encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(r.key)
	if err != nil {
		return "", fmt.Errorf("aes.NewCipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("cipher.NewGCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("rand nonce: %w", err)
	}

	// Seal appends the ciphertext to nonce, producing: nonce || ciphertext || tag.
	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// decrypt decrypts a base64-encoded AES-256-GCM ciphertext.
func (r *CredentialRepo) decrypt(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("base64 decode: %w", err)
	}

	block, err := aes.NewCipher(r.key)
	if err != nil {
		return "", fmt.Errorf("aes.NewCipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("cipher.NewGCM: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return "", errors.New("ciphertext too short")
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("gcm.Open: %w", err)
	}

	return string(plaintext), nil
}
