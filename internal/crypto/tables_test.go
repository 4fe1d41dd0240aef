package crypto

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-master-password/models"
)

func TestTemplates_EveryTypeHasTemplates(t *testing.T) {
	for _, pt := range models.PasswordTypes {
		templates, err := Templates(pt)
		if err != nil {
			t.Fatalf("Templates(%s) error: %v", pt, err)
		}
		if len(templates) == 0 {
			t.Fatalf("Templates(%s) is empty", pt)
		}
	}
}

func TestTemplates_Counts(t *testing.T) {
	want := map[models.PasswordType]int{
		models.MaximumSecurityPassword: 2,
		models.LongPassword:            21,
		models.MediumPassword:          2,
		models.ShortPassword:           1,
		models.BasicPassword:           3,
		models.PIN:                     1,
	}

	for pt, n := range want {
		templates, _ := Templates(pt)
		if len(templates) != n {
			t.Errorf("Templates(%s) has %d entries, want %d", pt, len(templates), n)
		}
	}
}

func TestTemplates_SameLengthWithinType(t *testing.T) {
	for _, pt := range models.PasswordTypes {
		templates, _ := Templates(pt)
		for _, tpl := range templates {
			if len(tpl) != len(templates[0]) {
				t.Errorf("%s: template %q length %d differs from %d", pt, tpl, len(tpl), len(templates[0]))
			}
		}
	}
}

func TestTemplates_LongTemplatesAreUnique(t *testing.T) {
	templates, _ := Templates(models.LongPassword)

	seen := make(map[string]bool, len(templates))
	for _, tpl := range templates {
		if seen[tpl] {
			t.Fatalf("duplicate long template %q", tpl)
		}
		seen[tpl] = true
	}
}

func TestTemplates_ReturnsCopy(t *testing.T) {
	templates, _ := Templates(models.PIN)
	templates[0] = "xxxx"

	again, _ := Templates(models.PIN)
	if again[0] != "nnnn" {
		t.Fatalf("Templates must not expose the table, got %q", again[0])
	}
}

func TestTemplates_UnknownType(t *testing.T) {
	for _, pt := range []models.PasswordType{0, 7, -1} {
		_, err := Templates(pt)
		if !errors.Is(err, ErrUnknownPasswordType) {
			t.Errorf("Templates(%d): expected ErrUnknownPasswordType, got %v", int(pt), err)
		}
	}
}

func TestCharacterGroup_ClosedAlphabet(t *testing.T) {
	for _, pt := range models.PasswordTypes {
		templates, _ := Templates(pt)
		for _, tpl := range templates {
			for i := 0; i < len(tpl); i++ {
				if _, err := CharacterGroup(tpl[i]); err != nil {
					t.Errorf("%s: template %q symbol %q: %v", pt, tpl, tpl[i], err)
				}
			}
		}
	}
}

func TestCharacterGroup_Sizes(t *testing.T) {
	want := map[byte]int{
		'V': 5,
		'C': 21,
		'v': 5,
		'c': 21,
		'A': 26,
		'a': 52,
		'n': 10,
		'o': 24,
		'x': 72,
	}

	for symbol, n := range want {
		group, err := CharacterGroup(symbol)
		if err != nil {
			t.Fatalf("CharacterGroup(%q) error: %v", symbol, err)
		}
		if len(group) != n {
			t.Errorf("CharacterGroup(%q) has %d chars, want %d", symbol, len(group), n)
		}
	}
}

func TestCharacterGroup_UppercaseXIsNotMapped(t *testing.T) {
	_, err := CharacterGroup('X')
	if !errors.Is(err, ErrMissingCharacterGroup) {
		t.Fatalf("expected ErrMissingCharacterGroup for 'X', got %v", err)
	}
}

func TestMinSeedSize(t *testing.T) {
	if MinSeedSize != 21 {
		t.Fatalf("MinSeedSize = %d, want 21", MinSeedSize)
	}
	if MinSeedSize > SeedSize {
		t.Fatalf("a derived seed (%d bytes) must cover MinSeedSize (%d)", SeedSize, MinSeedSize)
	}
}

func TestTemplates_Verbatim(t *testing.T) {
	want := map[models.PasswordType][]string{
		models.MaximumSecurityPassword: {"anoxxxxxxxxxxxxxxxxx", "axxxxxxxxxxxxxxxxxno"},
		models.LongPassword: {
			"CvcvnoCvcvCvcv", "CvcvCvcvnoCvcv", "CvcvCvcvCvcvno",
			"CvccnoCvcvCvcv", "CvccCvcvnoCvcv", "CvccCvcvCvcvno",
			"CvcvnoCvccCvcv", "CvcvCvccnoCvcv", "CvcvCvccCvcvno",
			"CvcvnoCvcvCvcc", "CvcvCvcvnoCvcc", "CvcvCvcvCvccno",
			"CvccnoCvccCvcv", "CvccCvccnoCvcv", "CvccCvccCvcvno",
			"CvcvnoCvccCvcc", "CvcvCvccnoCvcc", "CvcvCvccCvccno",
			"CvccnoCvcvCvcc", "CvccCvcvnoCvcc", "CvccCvcvCvccno",
		},
		models.MediumPassword: {"CvcnoCvc", "CvcCvcno"},
		models.ShortPassword:  {"Cvcn"},
		models.BasicPassword:  {"aaanaaan", "aannaaan", "aaannaaa"},
		models.PIN:            {"nnnn"},
	}

	for pt, templates := range want {
		got, err := Templates(pt)
		if err != nil {
			t.Fatalf("Templates(%s) error: %v", pt, err)
		}
		if len(got) != len(templates) {
			t.Fatalf("Templates(%s) has %d entries, want %d", pt, len(got), len(templates))
		}
		for i := range templates {
			if got[i] != templates[i] {
				t.Errorf("Templates(%s)[%d] = %q, want %q", pt, i, got[i], templates[i])
			}
		}
	}
}

func TestCharacterGroup_Verbatim(t *testing.T) {
	want := map[byte]string{
		'V': "AEIOU",
		'C': "BCDFGHJKLMNPQRSTVWXYZ",
		'v': "aeiou",
		'c': "bcdfghjklmnpqrstvwxyz",
		'A': "AEIOUBCDFGHJKLMNPQRSTVWXYZ",
		'a': "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz",
		'n': "0123456789",
		'o': "@&%?,=[]_:-+*$#!'^~;()/.",
		'x': "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz0123456789!@#$%^&*()",
	}

	for symbol, chars := range want {
		got, err := CharacterGroup(symbol)
		if err != nil {
			t.Fatalf("CharacterGroup(%q) error: %v", symbol, err)
		}
		if got != chars {
			t.Errorf("CharacterGroup(%q) = %q, want %q", symbol, got, chars)
		}
	}
}
