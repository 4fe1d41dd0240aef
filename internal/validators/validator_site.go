// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-master-password/models"
)

type SiteValidator struct {
}

func NewSiteValidator() Validator {
	return &SiteValidator{}
}

func (v *SiteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Site:
		return v.validateSite(ctx, value, fields...)
	case *models.Site:
		return v.validateSite(ctx, *value, fields...)

	case models.SiteList:
		return v.validateSiteList(ctx, value, fields...)
	case *models.SiteList:
		return v.validateSiteList(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SiteValidator) validateSite(_ context.Context, site models.Site, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserName, FieldSiteName, FieldCounter, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := uuid.Validate(site.ID); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidSiteID, err)
			}
		case FieldUserName:
			if strings.TrimSpace(site.UserName) == "" {
				return ErrEmptyUserName
			}
		case FieldSiteName:
			if strings.TrimSpace(site.SiteName) == "" {
				return ErrEmptySiteName
			}
		case FieldCounter:
			if site.Counter < 1 {
				return ErrInvalidCounter
			}
		case FieldType:
			if !site.Type.Valid() {
				return fmt.Errorf("%w: %s", ErrInvalidPasswordType, site.Type)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SiteValidator) validateSiteList(ctx context.Context, list models.SiteList, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSites}
	}

	for _, f := range fields {
		switch f {
		case FieldUserName:
			if strings.TrimSpace(list.UserName) == "" {
				return ErrEmptyUserName
			}
		case FieldSites:
			if len(list.Sites) == 0 {
				return ErrEmptySiteList
			}
			for i, site := range list.Sites {
				siteFields := []string{FieldSiteName, FieldCounter, FieldType}
				if strings.TrimSpace(list.UserName) == "" {
					siteFields = append(siteFields, FieldUserName)
				}
				if err := v.validateSite(ctx, site, siteFields...); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
