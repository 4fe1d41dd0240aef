package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-master-password/internal/config"
	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/migrations"
)

const (
	maxRetries     = 3
	retryBaseDelay = 50 * time.Millisecond
)

// DB wraps *sql.DB with the dialect specific pieces the repository needs: a
// squirrel statement builder with the right placeholder format, the goose
// dialect and an error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN. postgres:// and
// postgresql:// URLs use pgx, anything else is a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	switch {
	case dsn == "":
		return nil, fmt.Errorf("%w: empty", ErrUnsupportedDSN)
	case isPostgresDSN(dsn):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.Contains(dsn, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn[:strings.Index(dsn, "://")])
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs op until it succeeds, fails with a non-retryable error or
// runs out of attempts. The first attempt always runs, even on a cancelled
// context.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || db.classify(err) != Retryable {
		return err
	}

	attempt := 1
	backoff := retry.WithMaxRetries(maxRetries-1, retry.NewExponential(retryBaseDelay))
	return retry.Do(ctx, backoff, func(context.Context) error {
		if attempt > 1 {
			if err = op(); err == nil {
				return nil
			}
			if db.classify(err) != Retryable {
				return err
			}
		}
		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying database operation")
		attempt++
		return retry.RetryableError(err)
	})
}

// classify maps a driver error to a domain sentinel when it has one.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
