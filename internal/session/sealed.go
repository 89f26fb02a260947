package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var ErrUnsealFailed = errors.New("session value could not be unsealed")

// SealedStore encrypts values with NaCl secretbox before handing them to the inner store.
type SealedStore struct {
	inner Store
	key   [32]byte
}

// NewSealedStore derives the box key from secret with SHA-256.
func NewSealedStore(inner Store, secret string) *SealedStore {
	return &SealedStore{inner: inner, key: sha256.Sum256([]byte(secret))}
}

func (s *SealedStore) Get(ctx context.Context, key string) (string, bool, error) {
	sealed, ok, err := s.inner.Get(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize {
		return "", false, fmt.Errorf("%w: key %q", ErrUnsealFailed, key)
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", false, fmt.Errorf("%w: key %q", ErrUnsealFailed, key)
	}
	return string(plain), true, nil
}

func (s *SealedStore) Set(ctx context.Context, key, value string) error {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(value), &nonce, &s.key)
	return s.inner.Set(ctx, key, base64.StdEncoding.EncodeToString(box))
}

func (s *SealedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}
