package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "modernc.org/sqlite"
)

// connPragmas apply to every connection of both pools.
var connPragmas = []string{
	"busy_timeout(5000)",
	"synchronous(NORMAL)",
	"cache_size(-16000)",
}

// DB provides dual reader/writer database connections.
// The writer connection is limited to a single connection to avoid "database is locked" errors.
// The reader pool allows up to 4 concurrent readers.
type DB struct {
	Writer *sql.DB
	Reader *sql.DB
	path   string
}

// NewDB opens the settings database at dbPath in WAL mode, creating the
// parent directory when it is missing.
func NewDB(ctx context.Context, dbPath string) (*DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	return openDB(ctx, buildDSN(dbPath, nil, "journal_mode(WAL)"), dbPath)
}

// buildDSN assembles a modernc.org/sqlite file URI with the shared pragmas
// plus extra ones.
func buildDSN(name string, params url.Values, extra ...string) string {
	var b strings.Builder
	b.WriteString("file:")
	b.WriteString(name)
	b.WriteByte('?')
	if len(params) > 0 {
		b.WriteString(params.Encode())
		b.WriteByte('&')
	}
	for i, p := range slices.Concat(connPragmas, extra) {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString("_pragma=")
		b.WriteString(p)
	}
	return b.String()
}

func openDB(ctx context.Context, dsn, path string) (*DB, error) {
	writer, err := openPool(ctx, dsn, 1)
	if err != nil {
		return nil, fmt.Errorf("writer: %w", err)
	}

	reader, err := openPool(ctx, dsn, 4)
	if err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("reader: %w", err)
	}

	return &DB{
		Writer: writer,
		Reader: reader,
		path:   path,
	}, nil
}

func openPool(ctx context.Context, dsn string, maxConns int) (*sql.DB, error) {
	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	pool.SetMaxOpenConns(maxConns)

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

// Close closes both reader and writer connections. Returns the first error encountered.
func (db *DB) Close() error {
	var firstErr error

	if err := db.Reader.Close(); err != nil {
		firstErr = fmt.Errorf("close reader: %w", err)
	}

	if err := db.Writer.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close writer: %w", err)
	}

	return firstErr
}
