package store

import (
	"context"

	"github.com/MKhiriev/go-master-password/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SiteRepository persists site metadata. It never sees a master password,
// a master key or a generated password.
type SiteRepository interface {
	SaveSite(ctx context.Context, site models.Site) (models.Site, error)
	GetSite(ctx context.Context, id string) (models.Site, error)
	GetSiteByName(ctx context.Context, userName, siteName string) (models.Site, error)
	ListSites(ctx context.Context, userName string) ([]models.Site, error)
	UpdateSite(ctx context.Context, site models.Site) (models.Site, error)
	DeleteSite(ctx context.Context, id string) error
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
