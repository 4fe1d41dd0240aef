// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// GeneratorService turns a user's secrets and a site into a password. It is
// the only service that touches master passwords and keys; it never stores
// or logs them.
type GeneratorService interface {
	// DeriveMasterKey runs the memory-hard key derivation. It returns
	// ctx.Err() as soon as ctx is done; a key that finishes afterwards is
	// wiped and discarded. The caller owns the returned key and must Wipe it.
	DeriveMasterKey(ctx context.Context, userName, masterPassword string) (*crypto.MasterKey, error)

	// GeneratePassword renders the password of site under masterKey. A zero
	// counter or type falls back to the configured defaults.
	GeneratePassword(ctx context.Context, masterKey *crypto.MasterKey, site models.Site) (string, error)

	// GenerateOnce derives a key, renders one password and wipes the key.
	GenerateOnce(ctx context.Context, userName, masterPassword string, site models.Site) (string, error)
}

// SiteService manages the stored site list of a user.
type SiteService interface {
	// AddSite stores a new site. Zero counter and type take the configured
	// defaults; ID and timestamps are assigned here.
	AddSite(ctx context.Context, site models.Site) (models.Site, error)

	// ListSites returns the sites of userName ordered by name.
	ListSites(ctx context.Context, userName string) ([]models.Site, error)

	// GetSite returns the site with the given ID.
	GetSite(ctx context.Context, id string) (models.Site, error)

	// GetSiteByName returns the site of userName called siteName.
	GetSiteByName(ctx context.Context, userName, siteName string) (models.Site, error)

	// UpdateSite rewrites the name, login, counter and type of a stored site.
	UpdateSite(ctx context.Context, site models.Site) (models.Site, error)

	// BumpCounter adds delta to the counter of a site. The counter never
	// drops below 1.
	BumpCounter(ctx context.Context, id string, delta int) (models.Site, error)

	// CycleType switches a site to the next password type.
	CycleType(ctx context.Context, id string) (models.Site, error)

	// DeleteSite removes a site.
	DeleteSite(ctx context.Context, id string) error

	// ExportSites writes the sites of userName to w as a JSON
	// [models.SiteList] and returns how many were written.
	ExportSites(ctx context.Context, userName string, w io.Writer) (int, error)

	// ImportSites reads a JSON [models.SiteList] from r and upserts every
	// entry by (user name, site name). It returns how many were imported.
	ImportSites(ctx context.Context, r io.Reader) (int, error)
}

// AppInfoService exposes the build metadata of the running binary.
type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}
