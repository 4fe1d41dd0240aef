package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-master-password/models"
)

// templatesByType maps each password type to its ordered template list.
// Selection is by index, so order is part of the algorithm.
var templatesByType = map[models.PasswordType][]string{
	models.MaximumSecurityPassword: {
		"anoxxxxxxxxxxxxxxxxx",
		"axxxxxxxxxxxxxxxxxno",
	},
	models.LongPassword: {
		"CvcvnoCvcvCvcv",
		"CvcvCvcvnoCvcv",
		"CvcvCvcvCvcvno",
		"CvccnoCvcvCvcv",
		"CvccCvcvnoCvcv",
		"CvccCvcvCvcvno",
		"CvcvnoCvccCvcv",
		"CvcvCvccnoCvcv",
		"CvcvCvccCvcvno",
		"CvcvnoCvcvCvcc",
		"CvcvCvcvnoCvcc",
		"CvcvCvcvCvccno",
		"CvccnoCvccCvcv",
		"CvccCvccnoCvcv",
		"CvccCvccCvcvno",
		"CvcvnoCvccCvcc",
		"CvcvCvccnoCvcc",
		"CvcvCvccCvccno",
		"CvccnoCvcvCvcc",
		"CvccCvcvnoCvcc",
		"CvccCvcvCvccno",
	},
	models.MediumPassword: {
		"CvcnoCvc",
		"CvcCvcno",
	},
	models.ShortPassword: {
		"Cvcn",
	},
	models.BasicPassword: {
		"aaanaaan",
		"aannaaan",
		"aaannaaa",
	},
	models.PIN: {
		"nnnn",
	},
}

// characterGroups binds every template symbol to an ordered character set.
var characterGroups = map[byte]string{
	'V': "AEIOU",
	'C': "BCDFGHJKLMNPQRSTVWXYZ",
	'v': "aeiou",
	'c': "bcdfghjklmnpqrstvwxyz",
	'A': "AEIOUBCDFGHJKLMNPQRSTVWXYZ",
	'a': "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz",
	'n': "0123456789",
	'o': "@&%?,=[]_:-+*$#!'^~;()/.",
	// Lowercase on purpose: the published algorithm text says 'X' but every
	// implementation uses 'x'.
	'x': "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz0123456789!@#$%^&*()",
}

// longestTemplate is the length of the longest template in templatesByType.
var longestTemplate = func() int {
	longest := 0
	for _, templates := range templatesByType {
		for _, t := range templates {
			longest = max(longest, len(t))
		}
	}
	return longest
}()

// MinSeedSize is the smallest seed that can render every template: one byte
// selects the template, one more per template position.
var MinSeedSize = longestTemplate + 1

// Templates returns a copy of the template list for passwordType.
func Templates(passwordType models.PasswordType) ([]string, error) {
	templates, ok := templatesByType[passwordType]
	if !ok || len(templates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPasswordType, passwordType)
	}
	return append([]string(nil), templates...), nil
}

// CharacterGroup returns the character set bound to a template symbol.
func CharacterGroup(symbol byte) (string, error) {
	group, ok := characterGroups[symbol]
	if !ok || group == "" {
		return "", fmt.Errorf("%w: %q", ErrMissingCharacterGroup, symbol)
	}
	return group, nil
}
