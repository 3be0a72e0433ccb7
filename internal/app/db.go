package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/esports-club/internal/config"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
)

// OpenDatabase opens the traced connection pool and pings it once.
// A failed ping is returned; callers treat it as fatal.
func OpenDatabase(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	db.SetConnMaxIdleTime(cfg.DBConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("database connected",
		"db_name", dbNameFromURL(dsn),
		"max_open_conns", cfg.DBMaxOpenConns,
		"conn_max_idle_time", cfg.DBConnMaxIdleTime.String(),
	)
	return db, nil
}
