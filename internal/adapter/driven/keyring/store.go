// Package keyring implements the CredentialStore port on top of the operating
// system's keychain.
package keyring

import (
	"context"
	"errors"
	"fmt"
	"time"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/ericfisherdev/kotranslate/internal/domain/model"
	"github.com/ericfisherdev/kotranslate/internal/domain/port/driven"
)

// DefaultService is the keychain service name entries are filed under.
const DefaultService = "kotranslate"

var (
	_ driven.CredentialStore = (*Store)(nil)
	_ driven.InstallMarker   = (*Store)(nil)
)

// Store keeps the API key in the OS keychain under one service/user pair.
type Store struct {
	service string
}

// NewStore creates a Store filing entries under service.
func NewStore(service string) *Store {
	if service == "" {
		service = DefaultService
	}
	return &Store{service: service}
}

// Get returns the stored API key, or ("", nil) when the keychain has no entry.
func (s *Store) Get(_ context.Context) (string, error) {
	value, err := gokeyring.Get(s.service, model.CredentialKey)
	if errors.Is(err, gokeyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("keyring get %s/%s: %w", s.service, model.CredentialKey, err)
	}
	return value, nil
}

// Set stores or replaces the API key.
func (s *Store) Set(_ context.Context, value string) error {
	if err := gokeyring.Set(s.service, model.CredentialKey, value); err != nil {
		return fmt.Errorf("keyring set %s/%s: %w", s.service, model.CredentialKey, err)
	}
	return nil
}

// MarkInstalled files the install marker entry unless it already exists.
func (s *Store) MarkInstalled(_ context.Context) (bool, error) {
	_, err := gokeyring.Get(s.service, model.InstallMarkerKey)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gokeyring.ErrNotFound) {
		return false, fmt.Errorf("keyring get %s/%s: %w", s.service, model.InstallMarkerKey, err)
	}

	if err := gokeyring.Set(s.service, model.InstallMarkerKey, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return false, fmt.Errorf("keyring set %s/%s: %w", s.service, model.InstallMarkerKey, err)
	}
	return true, nil
}
