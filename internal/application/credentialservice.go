package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ericfisherdev/kotranslate/internal/domain/model"
	"github.com/ericfisherdev/kotranslate/internal/domain/port/driven"
)

// CredentialService is the options and popup side of the credential store.
type CredentialService struct {
	store  driven.CredentialStore
	logger *slog.Logger
}

// NewCredentialService creates a CredentialService over store.
func NewCredentialService(store driven.CredentialStore, logger *slog.Logger) *CredentialService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CredentialService{store: store, logger: logger}
}

// Save trims value and stores it. Empty input is rejected with
// model.ErrEmptyCredential and nothing is written.
func (s *CredentialService) Save(ctx context.Context, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return model.ErrEmptyCredential
	}

	if err := s.store.Set(ctx, value); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}

	s.logger.Info("api key saved", "preview", model.PreviewCredential(value))
	return nil
}

// Get returns the stored key, or "" when none is configured.
func (s *CredentialService) Get(ctx context.Context) (string, error) {
	value, err := s.store.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("load api key: %w", err)
	}
	return value, nil
}

// Status reports whether a key is configured.
func (s *CredentialService) Status(ctx context.Context) (model.CredentialStatus, error) {
	value, err := s.Get(ctx)
	if err != nil {
		return model.CredentialStatus{}, err
	}
	if !model.IsConfigured(value) {
		return model.CredentialStatus{}, nil
	}
	return model.CredentialStatus{Configured: true, Preview: model.PreviewCredential(value)}, nil
}
