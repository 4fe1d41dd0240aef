package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-master-password/internal/config"
	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/internal/store"
	"github.com/MKhiriev/go-master-password/internal/validators"
	"github.com/MKhiriev/go-master-password/models"
)

type siteService struct {
	repository store.SiteRepository
	validator  validators.Validator

	defaultType    models.PasswordType
	defaultCounter uint32

	now   func() time.Time
	newID func() string

	logger *logger.Logger
}

// NewSiteService wires a [SiteService] to repository.
func NewSiteService(repository store.SiteRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) SiteService {
	s := &siteService{
		repository:     repository,
		validator:      validator,
		defaultType:    cfg.DefaultType,
		defaultCounter: cfg.DefaultCounter,
		now:            func() time.Time { return time.Now().UTC() },
		newID:          uuid.NewString,
		logger:         logger,
	}
	if !s.defaultType.Valid() {
		s.defaultType = models.DefaultPasswordType
	}
	if s.defaultCounter == 0 {
		s.defaultCounter = models.DefaultCounter
	}
	return s
}

func (s *siteService) withDefaults(site models.Site) models.Site {
	site.UserName = strings.TrimSpace(site.UserName)
	site.SiteName = strings.TrimSpace(site.SiteName)
	site.Login = strings.TrimSpace(site.Login)
	if site.Counter == 0 {
		site.Counter = s.defaultCounter
	}
	if site.Type == 0 {
		site.Type = s.defaultType
	}
	return site
}

func (s *siteService) AddSite(ctx context.Context, site models.Site) (models.Site, error) {
	log := logger.FromContext(ctx)

	site = s.withDefaults(site)
	if err := s.validator.Validate(ctx, site, validators.FieldUserName, validators.FieldSiteName, validators.FieldCounter, validators.FieldType); err != nil {
		return models.Site{}, err
	}

	now := s.now()
	site.ID = s.newID()
	site.CreatedAt = now
	site.UpdatedAt = now

	saved, err := s.repository.SaveSite(ctx, site)
	if err != nil {
		return models.Site{}, mapStoreError("add site", err)
	}

	log.Info().Str("site_name", saved.SiteName).Stringer("type", saved.Type).Msg("site added")
	return saved, nil
}

func (s *siteService) ListSites(ctx context.Context, userName string) ([]models.Site, error) {
	if strings.TrimSpace(userName) == "" {
		return nil, ErrEmptyUserName
	}

	sites, err := s.repository.ListSites(ctx, strings.TrimSpace(userName))
	if err != nil {
		return nil, mapStoreError("list sites", err)
	}
	return sites, nil
}

func (s *siteService) GetSite(ctx context.Context, id string) (models.Site, error) {
	site, err := s.repository.GetSite(ctx, id)
	if err != nil {
		return models.Site{}, mapStoreError("get site", err)
	}
	return site, nil
}

func (s *siteService) GetSiteByName(ctx context.Context, userName, siteName string) (models.Site, error) {
	site, err := s.repository.GetSiteByName(ctx, strings.TrimSpace(userName), strings.TrimSpace(siteName))
	if err != nil {
		return models.Site{}, mapStoreError("get site", err)
	}
	return site, nil
}

func (s *siteService) UpdateSite(ctx context.Context, site models.Site) (models.Site, error) {
	log := logger.FromContext(ctx)

	existing, err := s.GetSite(ctx, site.ID)
	if err != nil {
		return models.Site{}, err
	}

	existing.SiteName = strings.TrimSpace(site.SiteName)
	existing.Login = strings.TrimSpace(site.Login)
	existing.Counter = site.Counter
	existing.Type = site.Type

	if err := s.validator.Validate(ctx, existing, validators.FieldSiteName, validators.FieldCounter, validators.FieldType); err != nil {
		return models.Site{}, err
	}

	updated, err := s.save(ctx, existing)
	if err != nil {
		return models.Site{}, err
	}

	log.Info().Str("site_name", updated.SiteName).Uint32("counter", updated.Counter).Msg("site updated")
	return updated, nil
}

func (s *siteService) BumpCounter(ctx context.Context, id string, delta int) (models.Site, error) {
	site, err := s.GetSite(ctx, id)
	if err != nil {
		return models.Site{}, err
	}

	counter := int64(site.Counter) + int64(delta)
	counter = max(counter, 1)
	counter = min(counter, math.MaxUint32)
	if uint32(counter) == site.Counter {
		return site, nil
	}

	site.Counter = uint32(counter)
	return s.save(ctx, site)
}

func (s *siteService) CycleType(ctx context.Context, id string) (models.Site, error) {
	site, err := s.GetSite(ctx, id)
	if err != nil {
		return models.Site{}, err
	}

	site.Type = site.Type.Next()
	return s.save(ctx, site)
}

func (s *siteService) save(ctx context.Context, site models.Site) (models.Site, error) {
	site.UpdatedAt = s.now()

	updated, err := s.repository.UpdateSite(ctx, site)
	if err != nil {
		return models.Site{}, mapStoreError("update site", err)
	}
	return updated, nil
}

func (s *siteService) DeleteSite(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.repository.DeleteSite(ctx, id); err != nil {
		return mapStoreError("delete site", err)
	}

	log.Info().Str("id", id).Msg("site deleted")
	return nil
}

func (s *siteService) ExportSites(ctx context.Context, userName string, w io.Writer) (int, error) {
	sites, err := s.ListSites(ctx, userName)
	if err != nil {
		return 0, err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(models.SiteList{UserName: strings.TrimSpace(userName), Sites: sites}); err != nil {
		return 0, fmt.Errorf("encode site list: %w", err)
	}

	return len(sites), nil
}

func (s *siteService) ImportSites(ctx context.Context, r io.Reader) (int, error) {
	log := logger.FromContext(ctx)

	var list models.SiteList
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}

	list.UserName = strings.TrimSpace(list.UserName)
	for i := range list.Sites {
		if list.Sites[i].UserName == "" {
			list.Sites[i].UserName = list.UserName
		}
		list.Sites[i] = s.withDefaults(list.Sites[i])
	}

	if err := s.validator.Validate(ctx, list, validators.FieldSites); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}

	imported := 0
	for _, site := range list.Sites {
		if err := s.upsert(ctx, site); err != nil {
			return imported, fmt.Errorf("import %q: %w", site.SiteName, err)
		}
		imported++
	}

	log.Info().Int("count", imported).Msg("sites imported")
	return imported, nil
}

func (s *siteService) upsert(ctx context.Context, site models.Site) error {
	existing, err := s.GetSiteByName(ctx, site.UserName, site.SiteName)
	if errors.Is(err, ErrSiteNotFound) {
		_, err = s.AddSite(ctx, site)
		return err
	}
	if err != nil {
		return err
	}

	existing.Login = site.Login
	existing.Counter = site.Counter
	existing.Type = site.Type
	_, err = s.save(ctx, existing)
	return err
}
