// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-master-password/models"
)

const sitesTable = "sites"

var siteColumns = []string{
	"id",
	"user_name",
	"site_name",
	"login",
	"counter",
	"type",
	"created_at",
	"updated_at",
}

func buildInsertSite(b sq.StatementBuilderType, site models.Site) (string, []any, error) {
	return b.Insert(sitesTable).
		Columns(siteColumns...).
		Values(
			site.ID,
			site.UserName,
			site.SiteName,
			site.Login,
			site.Counter,
			site.Type,
			site.CreatedAt,
			site.UpdatedAt,
		).
		ToSql()
}

func buildSelectSiteByID(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(siteColumns...).
		From(sitesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectSiteByName(b sq.StatementBuilderType, userName, siteName string) (string, []any, error) {
	return b.Select(siteColumns...).
		From(sitesTable).
		Where(sq.Eq{"user_name": userName}).
		Where(sq.Eq{"site_name": siteName}).
		ToSql()
}

func buildSelectSitesByUser(b sq.StatementBuilderType, userName string) (string, []any, error) {
	return b.Select(siteColumns...).
		From(sitesTable).
		Where(sq.Eq{"user_name": userName}).
		OrderBy("site_name ASC").
		ToSql()
}

// buildUpdateSite rewrites every mutable column; id, user_name and
// created_at never change.
func buildUpdateSite(b sq.StatementBuilderType, site models.Site) (string, []any, error) {
	return b.Update(sitesTable).
		Set("site_name", site.SiteName).
		Set("login", site.Login).
		Set("counter", site.Counter).
		Set("type", site.Type).
		Set("updated_at", site.UpdatedAt).
		Where(sq.Eq{"id": site.ID}).
		ToSql()
}

func buildDeleteSite(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(sitesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
