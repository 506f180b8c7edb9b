package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var ErrSealedValue = errors.New("sealed value cannot be opened")

// Sealer encrypts small secrets for storage at rest.
type Sealer interface {
	Seal(plain string) (string, error)
	Open(sealed string) (string, error)
}

// SecretBox seals values with NaCl secretbox keyed by a SHA-256 of the passphrase.
// Empty strings pass through unchanged.
type SecretBox struct {
	key  [32]byte
	rand io.Reader
}

// NewSecretBox derives the sealing key from passphrase.
func NewSecretBox(passphrase string) *SecretBox {
	return &SecretBox{key: sha256.Sum256([]byte(passphrase)), rand: rand.Reader}
}

func (b *SecretBox) Seal(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(b.rand, nonce[:]); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}
	out := secretbox.Seal(nonce[:], []byte(plain), &nonce, &b.key)
	return base64.StdEncoding.EncodeToString(out), nil
}

func (b *SecretBox) Open(sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrSealedValue
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &b.key)
	if !ok {
		return "", ErrSealedValue
	}
	return string(plain), nil
}
