package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/riskibarqy/esports-club/db/migrations"
	"github.com/riskibarqy/esports-club/internal/config"
)

// NewMigrator reads migrations from dir when set, otherwise from the
// schema embedded in the binary.
func NewMigrator(dbURL, dir string) (*migrate.Migrate, string, error) {
	dir = strings.TrimSpace(dir)
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, "", fmt.Errorf("resolve migrations dir %q: %w", dir, err)
		}
		sourceURL := "file://" + filepath.ToSlash(abs)
		m, err := migrate.New(sourceURL, dbURL)
		if err != nil {
			return nil, "", fmt.Errorf("create migrator: %w", err)
		}
		return m, sourceURL, nil
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, "", fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		return nil, "", fmt.Errorf("create migrator: %w", err)
	}
	return m, "embedded", nil
}

// MigrationDBURL applies the same prepared-statement toggle the services use.
func MigrationDBURL(cfg config.Config) string {
	return normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
}
