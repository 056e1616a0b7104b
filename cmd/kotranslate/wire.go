package main

import (
	"context"
	"fmt"
	"log/slog"

	keyringadapter "github.com/ericfisherdev/kotranslate/internal/adapter/driven/keyring"
	sqliteadapter "github.com/ericfisherdev/kotranslate/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/kotranslate/internal/config"
	"github.com/ericfisherdev/kotranslate/internal/domain/model"
	"github.com/ericfisherdev/kotranslate/internal/domain/port/driven"
)

// credentialStore is the configured credential backend plus its cleanup.
type credentialStore struct {
	driven.CredentialStore
	marker driven.InstallMarker
	close  func()
}

// openCredentialStore opens the backend selected by the configuration.
func openCredentialStore(ctx context.Context, cfg *config.Config) (*credentialStore, error) {
	if cfg.CredentialBackend == config.BackendKeyring {
		slog.Info("using os keychain for the api key", "service", keyringadapter.DefaultService)
		store := keyringadapter.NewStore(keyringadapter.DefaultService)
		return &credentialStore{
			CredentialStore: store,
			marker:          store,
			close:           func() {},
		}, nil
	}

	// Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	slog.Info("database opened", "path", cfg.DBPath)

	// Run migrations on writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("migrations complete")

	if cfg.SecretKey == nil {
		slog.Warn("KOTRANSLATE_SECRET_KEY not set, the api key is stored unencrypted")
	}

	return &credentialStore{
		CredentialStore: sqliteadapter.NewCredentialRepo(db, cfg.SecretKey),
		marker:          sqliteadapter.NewInstallRepo(db),
		close: func() {
			if closeErr := db.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		},
	}, nil
}

// installReason sets the install marker and reports install the first time
// the service starts against this storage, update afterwards. Only serve calls
// it, so one-shot commands never consume the first start.
func (s *credentialStore) installReason(ctx context.Context) model.InstallReason {
	first, err := s.marker.MarkInstalled(ctx)
	if err != nil {
		slog.Warn("could not record install marker", "error", err)
		return model.InstallReasonUpdate
	}
	if first {
		return model.InstallReasonInstall
	}
	return model.InstallReasonUpdate
}
