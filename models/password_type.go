// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

// PasswordType selects the template list used to render a site password.
// The set is closed; the zero value is not a valid type.
type PasswordType int

const (
	// MaximumSecurityPassword renders 20 characters drawn mostly from the
	// full printable group.
	MaximumSecurityPassword PasswordType = 1

	// LongPassword renders 14 pronounceable characters with one digit and
	// one symbol.
	LongPassword PasswordType = 2

	// MediumPassword renders 8 pronounceable characters with one digit and
	// one symbol.
	MediumPassword PasswordType = 3

	// ShortPassword renders 4 characters: three letters and a digit.
	ShortPassword PasswordType = 4

	// BasicPassword renders 8 alphanumeric characters.
	BasicPassword PasswordType = 5

	// PIN renders 4 digits.
	PIN PasswordType = 6
)

const (
	// DefaultCounter is the counter a new site starts with.
	DefaultCounter uint32 = 1

	// DefaultPasswordType is the type a new site starts with.
	DefaultPasswordType = LongPassword
)

// ErrUnknownPasswordType is returned when a password type name or value is
// outside the closed set.
var ErrUnknownPasswordType = errors.New("unknown password type")

// PasswordTypes lists every valid type in declaration order.
var PasswordTypes = []PasswordType{
	MaximumSecurityPassword,
	LongPassword,
	MediumPassword,
	ShortPassword,
	BasicPassword,
	PIN,
}

var passwordTypeNames = map[PasswordType]string{
	MaximumSecurityPassword: "maximum",
	LongPassword:            "long",
	MediumPassword:          "medium",
	ShortPassword:           "short",
	BasicPassword:           "basic",
	PIN:                     "pin",
}

var passwordTypeAliases = map[string]PasswordType{
	"maximum": MaximumSecurityPassword,
	"max":     MaximumSecurityPassword,
	"x":       MaximumSecurityPassword,
	"long":    LongPassword,
	"l":       LongPassword,
	"medium":  MediumPassword,
	"m":       MediumPassword,
	"short":   ShortPassword,
	"s":       ShortPassword,
	"basic":   BasicPassword,
	"b":       BasicPassword,
	"pin":     PIN,
	"n":       PIN,
}

// Valid reports whether t is one of the six known types.
func (t PasswordType) Valid() bool {
	_, ok := passwordTypeNames[t]
	return ok
}

// String returns the canonical lower-case name of t.
func (t PasswordType) String() string {
	if name, ok := passwordTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PasswordType(%d)", int(t))
}

// Next returns the type following t in [PasswordTypes], wrapping around.
func (t PasswordType) Next() PasswordType {
	for i, pt := range PasswordTypes {
		if pt == t {
			return PasswordTypes[(i+1)%len(PasswordTypes)]
		}
	}
	return DefaultPasswordType
}

// ParsePasswordType resolves a canonical name or a one-letter alias
// (case-insensitive) to a [PasswordType].
func ParsePasswordType(s string) (PasswordType, error) {
	t, ok := passwordTypeAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPasswordType, s)
	}
	return t, nil
}

// MarshalText implements [encoding.TextMarshaler].
func (t PasswordType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPasswordType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *PasswordType) UnmarshalText(b []byte) error {
	parsed, err := ParsePasswordType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements [driver.Valuer]; types are stored by name.
func (t PasswordType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPasswordType, int(t))
	}
	return t.String(), nil
}

// Scan implements [sql.Scanner].
func (t *PasswordType) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrUnknownPasswordType, src)
	}
}
