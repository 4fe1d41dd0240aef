package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/models"
)

// siteRepository is the database/sql implementation of [SiteRepository].
// Queries are rendered with squirrel so the same code serves SQLite (?
// placeholders) and PostgreSQL ($n placeholders).
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type siteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSiteRepository constructs a [SiteRepository] backed by db.
func NewSiteRepository(db *DB, logger *logger.Logger) SiteRepository {
	logger.Debug().Msg("creating site repository")
	return &siteRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSite(row rowScanner) (models.Site, error) {
	var site models.Site
	err := row.Scan(
		&site.ID,
		&site.UserName,
		&site.SiteName,
		&site.Login,
		&site.Counter,
		&site.Type,
		&site.CreatedAt,
		&site.UpdatedAt,
	)
	return site, err
}

// SaveSite inserts a new site. The caller assigns ID and timestamps.
//
// Error handling:
//   - unique violation on id or (user_name, site_name) → [ErrSiteAlreadyExists].
//   - check violation (counter < 1) → [ErrInvalidSite].
func (r *siteRepository) SaveSite(ctx context.Context, site models.Site) (models.Site, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSite(r.db.builder, site)
	if err != nil {
		return models.Site{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*siteRepository.SaveSite").
			Str("site_name", site.SiteName).
			Msg("failed to insert site")
		return models.Site{}, r.mapWriteError(err)
	}

	return site, nil
}

// GetSite returns the site with the given id or [ErrSiteNotFound].
func (r *siteRepository) GetSite(ctx context.Context, id string) (models.Site, error) {
	query, args, err := buildSelectSiteByID(r.db.builder, id)
	if err != nil {
		return models.Site{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, "*siteRepository.GetSite", query, args)
}

// GetSiteByName returns the site of userName called siteName or
// [ErrSiteNotFound].
func (r *siteRepository) GetSiteByName(ctx context.Context, userName, siteName string) (models.Site, error) {
	query, args, err := buildSelectSiteByName(r.db.builder, userName, siteName)
	if err != nil {
		return models.Site{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, "*siteRepository.GetSiteByName", query, args)
}

func (r *siteRepository) getOne(ctx context.Context, fn, query string, args []any) (models.Site, error) {
	log := logger.FromContext(ctx)

	site, err := scanSite(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Site{}, ErrSiteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to scan site row")
		return models.Site{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return site, nil
}

// ListSites returns every site of userName ordered by site name. A user
// without sites gets an empty, non-nil slice.
func (r *siteRepository) ListSites(ctx context.Context, userName string) ([]models.Site, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSitesByUser(r.db.builder, userName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*siteRepository.ListSites").
			Msg("failed to execute query for listing sites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sites := make([]models.Site, 0)
	for rows.Next() {
		site, scanErr := scanSite(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*siteRepository.ListSites").
				Msg("failed to scan site row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		sites = append(sites, site)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*siteRepository.ListSites").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return sites, nil
}

// UpdateSite rewrites the mutable fields of the site identified by site.ID.
func (r *siteRepository) UpdateSite(ctx context.Context, site models.Site) (models.Site, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSite(r.db.builder, site)
	if err != nil {
		return models.Site{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*siteRepository.UpdateSite").
			Str("id", site.ID).
			Msg("failed to update site")
		return models.Site{}, r.mapWriteError(err)
	}

	if err := requireAffected(result); err != nil {
		return models.Site{}, err
	}

	return site, nil
}

// DeleteSite removes the site with the given id.
func (r *siteRepository) DeleteSite(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSite(r.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*siteRepository.DeleteSite").
			Str("id", id).
			Msg("failed to delete site")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSiteNotFound
	}
	return nil
}

func (r *siteRepository) mapWriteError(err error) error {
	switch r.db.classify(err) {
	case UniqueViolation:
		return ErrSiteAlreadyExists
	case CheckViolation:
		return fmt.Errorf("%w: %w", ErrInvalidSite, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
