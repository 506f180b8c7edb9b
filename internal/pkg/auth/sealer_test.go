package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestSecretBox_SealAndOpen(t *testing.T) {
	box := NewSecretBox("passphrase")
	sealed, err := box.Seal("GOCSPX-client-secret")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if sealed == "" || strings.Contains(sealed, "GOCSPX") {
		t.Fatalf("expected opaque sealed value, got %q", sealed)
	}

	plain, err := box.Open(sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if plain != "GOCSPX-client-secret" {
		t.Fatalf("unexpected plain text: %q", plain)
	}
}

func TestSecretBox_SealUsesFreshNonce(t *testing.T) {
	box := NewSecretBox("passphrase")
	a, _ := box.Seal("same")
	b, _ := box.Seal("same")
	if a == b {
		t.Fatal("expected different ciphertexts for repeated seal")
	}
}

func TestSecretBox_EmptyPassesThrough(t *testing.T) {
	box := NewSecretBox("passphrase")
	sealed, err := box.Seal("")
	if err != nil || sealed != "" {
		t.Fatalf("expected empty seal, got %q, %v", sealed, err)
	}
	plain, err := box.Open("")
	if err != nil || plain != "" {
		t.Fatalf("expected empty open, got %q, %v", plain, err)
	}
}

func TestSecretBox_OpenWithWrongKey(t *testing.T) {
	sealed, _ := NewSecretBox("one").Seal("value")
	if _, err := NewSecretBox("two").Open(sealed); !errors.Is(err, ErrSealedValue) {
		t.Fatalf("expected ErrSealedValue, got %v", err)
	}
}

func TestSecretBox_OpenGarbage(t *testing.T) {
	box := NewSecretBox("passphrase")
	for _, in := range []string{"not base64!", "c2hvcnQ="} {
		if _, err := box.Open(in); !errors.Is(err, ErrSealedValue) {
			t.Fatalf("expected ErrSealedValue for %q, got %v", in, err)
		}
	}
}
