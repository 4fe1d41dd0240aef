package crypto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSecret_WipeZeroesBuffer(t *testing.T) {
	key := fixedMasterKey(0xAB)
	buf := key.Bytes()

	key.Wipe()

	if !bytes.Equal(buf, make([]byte, MasterKeySize)) {
		t.Fatalf("expected buffer to be zeroed after Wipe, got %x", buf)
	}
	if key.Len() != 0 || key.Bytes() != nil {
		t.Fatalf("expected wiped key to be empty")
	}

	// second Wipe is a no-op
	key.Wipe()
}

func TestSecret_NeverFormatsContent(t *testing.T) {
	seed := NewSeed([]byte("very-secret-seed-bytes-0123456789"))

	for _, verb := range []string{"%v", "%s", "%+v", "%#v"} {
		out := fmt.Sprintf(verb, seed)
		if strings.Contains(out, "very-secret") {
			t.Fatalf("%s leaked secret: %s", verb, out)
		}
	}

	b, err := json.Marshal(seed)
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	if string(b) != `"[REDACTED]"` {
		t.Fatalf("json.Marshal = %s, want redacted", b)
	}
}

func TestSecret_ZerologRedacts(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	key := fixedMasterKey(0x61) // 'a'
	log.Info().Object("key", key).Msg("derived")

	if strings.Contains(buf.String(), strings.Repeat("a", 8)) {
		t.Fatalf("zerolog output leaked key: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "[REDACTED]") {
		t.Fatalf("expected redacted marker in %s", buf.String())
	}
}

func TestNewSeed_Copies(t *testing.T) {
	src := []byte{1, 2, 3}
	seed := NewSeed(src)
	src[0] = 9

	if seed.Bytes()[0] != 1 {
		t.Fatalf("NewSeed must copy its input")
	}
}

func TestSecret_Equal(t *testing.T) {
	a := fixedMasterKey(0x01)
	b := fixedMasterKey(0x01)
	c := fixedMasterKey(0x02)

	if !a.Equal(b) {
		t.Fatalf("expected equal keys")
	}
	if a.Equal(c) {
		t.Fatalf("expected different keys")
	}
	if a.Equal(nil) {
		t.Fatalf("expected key not equal to nil")
	}
}
