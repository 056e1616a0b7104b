package sqlite

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/kotranslate/internal/domain/model"
	"github.com/ericfisherdev/kotranslate/internal/domain/port/driven"
)

var _ driven.InstallMarker = (*InstallRepo)(nil)

// InstallRepo keeps the install marker as a row of the settings table.
type InstallRepo struct {
	db *DB
}

// NewInstallRepo creates a new InstallRepo.
func NewInstallRepo(db *DB) *InstallRepo {
	return &InstallRepo{db: db}
}

// MarkInstalled inserts the marker row unless it already exists.
func (r *InstallRepo) MarkInstalled(ctx context.Context) (bool, error) {
	const query = `INSERT INTO settings (name, value, updated_at) VALUES (?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO NOTHING`
	res, err := r.db.Writer.ExecContext(ctx, query, model.InstallMarkerKey)
	if err != nil {
		return false, fmt.Errorf("mark installed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark installed rows affected: %w", err)
	}
	return n == 1, nil
}
