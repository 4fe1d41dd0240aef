package service

import (
	"github.com/MKhiriev/go-master-password/internal/config"
	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/internal/store"
	"github.com/MKhiriev/go-master-password/internal/validators"
	"github.com/MKhiriev/go-master-password/models"
)

type Services struct {
	GeneratorService GeneratorService
	SiteService      SiteService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		GeneratorService: NewGeneratorService(crypto.NewAlgorithm(), cfg.App, logger),
		SiteService:      NewSiteService(storages.SiteRepository, validators.NewSiteValidator(), cfg.App, logger),
		AppInfoService:   NewAppInfoService(buildInfo, logger),
	}
}
