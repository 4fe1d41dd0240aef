package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the UUID of a stored site.
	FieldID = "id"

	// FieldUserName targets the master-password user a site belongs to.
	FieldUserName = "user_name"

	// FieldSiteName targets the site name fed into seed derivation.
	FieldSiteName = "site_name"

	// FieldCounter targets the rotation counter; it must be at least 1.
	FieldCounter = "counter"

	// FieldType targets the password type.
	FieldType = "type"

	// FieldSites targets the entries of a site list. Each entry is checked
	// for a site name, a counter and a type; a missing user name is allowed
	// when the list carries one.
	FieldSites = "sites"
)
