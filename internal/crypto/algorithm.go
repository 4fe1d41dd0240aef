// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/crypto/scrypt"

	"github.com/MKhiriev/go-master-password/models"
)

// Protocol constants. Every implementation of the algorithm uses the same
// values; changing any of them changes every generated password.
const (
	// keyScope domain-separates both the master key salt and the seed
	// message from any other use of the same secrets.
	keyScope = "com.lyndir.masterpassword"

	scryptN = 32768
	scryptR = 8
	scryptP = 2

	// MasterKeySize is the length of a derived master key in bytes.
	MasterKeySize = 64

	// SeedSize is the length of a template seed in bytes (HMAC-SHA256).
	SeedSize = sha256.Size
)

// algorithm is the private implementation of [Algorithm]. It has no state:
// the scrypt cost parameters are fixed by the protocol, not tunable.
type algorithm struct{}

// NewAlgorithm constructs the Master Password [Algorithm].
func NewAlgorithm() Algorithm {
	return &algorithm{}
}

// DeriveMasterKey implements [Algorithm]. It computes
//
//	scrypt(password, scope ‖ BE32(len(userName)) ‖ userName, N=32768, r=8, p=2, 64)
//
// where lengths count UTF-8 bytes. The password and salt buffers are zeroed
// before returning.
func (a *algorithm) DeriveMasterKey(userName, masterPassword string) (*MasterKey, error) {
	salt, err := scopedMessage(userName)
	if err != nil {
		return nil, fmt.Errorf("build master key salt: %w", err)
	}
	defer clear(salt)

	password := []byte(masterPassword)
	defer clear(password)

	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, MasterKeySize)
	if err != nil {
		// Only reachable with invalid cost parameters, which are constants.
		return nil, fmt.Errorf("%w: scrypt: %v", ErrConfiguration, err)
	}

	return &MasterKey{secret{b: key}}, nil
}

// DeriveTemplateSeed implements [Algorithm]. It computes
//
//	HMAC-SHA256(masterKey, scope ‖ BE32(len(siteName)) ‖ siteName ‖ BE32(counter))
//
// The HMAC acts as a PRF: seeds of different sites reveal nothing about each
// other or about the master key.
func (a *algorithm) DeriveTemplateSeed(masterKey *MasterKey, siteName string, counter uint32) (*Seed, error) {
	if masterKey == nil || masterKey.Len() != MasterKeySize {
		return nil, ErrInvalidMasterKey
	}

	message, err := scopedMessage(siteName)
	if err != nil {
		return nil, fmt.Errorf("build template seed message: %w", err)
	}
	message = binary.BigEndian.AppendUint32(message, counter)
	defer clear(message)

	mac := hmac.New(sha256.New, masterKey.Bytes())
	mac.Write(message)

	return &Seed{secret{b: mac.Sum(nil)}}, nil
}

// RenderPassword implements [Algorithm]. seed[0] picks the template and
// seed[i+1] picks the character at position i. Both selections are a plain
// modulo, so the small bias when a list length does not divide 256 is part
// of the algorithm and must stay.
func (a *algorithm) RenderPassword(seed *Seed, passwordType models.PasswordType) (string, error) {
	templates, ok := templatesByType[passwordType]
	if !ok || len(templates) == 0 {
		return "", fmt.Errorf("%w: %s", ErrUnknownPasswordType, passwordType)
	}

	var b []byte
	if seed != nil {
		b = seed.Bytes()
	}
	if len(b) < MinSeedSize {
		return "", fmt.Errorf("%w: got %d bytes, need %d", ErrSeedTooShort, len(b), MinSeedSize)
	}

	template := templates[int(b[0])%len(templates)]

	password := make([]byte, len(template))
	defer clear(password)

	for i := 0; i < len(template); i++ {
		group, ok := characterGroups[template[i]]
		if !ok || group == "" {
			return "", fmt.Errorf("%w: %q in template %q", ErrMissingCharacterGroup, template[i], template)
		}
		password[i] = group[int(b[i+1])%len(group)]
	}

	return string(password), nil
}

// scopedMessage returns keyScope ‖ BE32(len(s)) ‖ s with the length counted
// in UTF-8 bytes.
func scopedMessage(s string) ([]byte, error) {
	prefix, err := lengthPrefix(len(s))
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(keyScope)+4+len(s)+4)
	out = append(out, keyScope...)
	out = append(out, prefix[:]...)
	out = append(out, s...)
	return out, nil
}

// lengthPrefix encodes n as a 4-byte big-endian unsigned integer.
func lengthPrefix(n int) ([4]byte, error) {
	var prefix [4]byte
	if n < 0 || uint64(n) > math.MaxUint32 {
		return prefix, fmt.Errorf("%w: %d bytes", ErrInputTooLong, n)
	}
	binary.BigEndian.PutUint32(prefix[:], uint32(n))
	return prefix, nil
}
