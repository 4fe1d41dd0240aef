package crypto

import (
	"crypto/subtle"

	"github.com/rs/zerolog"
)

const redacted = "[REDACTED]"

// secret owns a byte buffer that must not leak into logs and is zeroed on
// Wipe. It is embedded by [MasterKey] and [Seed].
type secret struct {
	b []byte
}

// Bytes returns the underlying buffer. The slice aliases the secret: it is
// zeroed by Wipe and must not be retained past it.
func (s *secret) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len returns the buffer size, or 0 after Wipe.
func (s *secret) Len() int {
	if s == nil {
		return 0
	}
	return len(s.b)
}

// Wipe zeroes the buffer and drops it. Safe to call more than once.
func (s *secret) Wipe() {
	if s == nil {
		return
	}
	clear(s.b)
	s.b = nil
}

// Equal compares two secrets in constant time.
func (s *secret) Equal(other *secret) bool {
	if s == nil || other == nil {
		return s == other
	}
	return subtle.ConstantTimeCompare(s.b, other.b) == 1
}

func (s *secret) String() string { return redacted }

func (s *secret) GoString() string { return redacted }

func (s *secret) MarshalJSON() ([]byte, error) { return []byte(`"` + redacted + `"`), nil }

func (s *secret) MarshalZerologObject(e *zerolog.Event) {
	e.Int("len", s.Len()).Str("value", redacted)
}

// MasterKey is the 64-byte output of key derivation. It is scoped to one
// user name and master password pair.
type MasterKey struct {
	secret
}

// Equal reports whether both keys hold the same bytes.
func (k *MasterKey) Equal(other *MasterKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.secret.Equal(&other.secret)
}

// Seed is the 32-byte per-site value from which a password is rendered.
type Seed struct {
	secret
}

// NewMasterKey copies b into a new [MasterKey]. Keys of the wrong length
// are accepted here and rejected by [Algorithm.DeriveTemplateSeed].
func NewMasterKey(b []byte) *MasterKey {
	return &MasterKey{secret{b: append([]byte(nil), b...)}}
}

// NewSeed copies b into a new [Seed]. It exists for callers that already
// hold seed bytes, such as fixed-seed tests.
func NewSeed(b []byte) *Seed {
	return &Seed{secret{b: append([]byte(nil), b...)}}
}

// Equal reports whether both seeds hold the same bytes.
func (s *Seed) Equal(other *Seed) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.secret.Equal(&other.secret)
}
