package crypto

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by this package matches exactly one of
// them with [errors.Is].
var (
	// ErrConfiguration means the compiled-in tables are incomplete. It is a
	// programmer error and never goes away on retry.
	ErrConfiguration = errors.New("algorithm configuration error")

	// ErrInvalidInput means a caller-supplied value cannot be encoded or used.
	ErrInvalidInput = errors.New("invalid algorithm input")
)

var (
	// ErrUnknownPasswordType is returned when no template list exists for the
	// requested password type.
	ErrUnknownPasswordType = fmt.Errorf("%w: unknown password type", ErrConfiguration)

	// ErrMissingCharacterGroup is returned when a template symbol has no
	// character group.
	ErrMissingCharacterGroup = fmt.Errorf("%w: template symbol without character group", ErrConfiguration)

	// ErrInputTooLong is returned when a string's UTF-8 length does not fit
	// the 32-bit length prefix.
	ErrInputTooLong = fmt.Errorf("%w: length exceeds 32-bit prefix", ErrInvalidInput)

	// ErrInvalidMasterKey is returned for a nil, wiped or wrong-sized key.
	ErrInvalidMasterKey = fmt.Errorf("%w: master key must be %d bytes", ErrInvalidInput, MasterKeySize)

	// ErrSeedTooShort is returned when a seed cannot index every position of
	// the longest template.
	ErrSeedTooShort = fmt.Errorf("%w: seed too short", ErrInvalidInput)
)
