package cryptocore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
)

// NonceSize is the length in bytes of an AES-256-GCM nonce (C3 contract).
const NonceSize = 12

// generateNonce draws a fresh 96-bit nonce from C1. Never reused across
// calls, never cached.
func generateNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("cryptocore: generate nonce: %w", err)
	}
	return nonce, nil
}

// seal encrypts plaintext under key with nonce; associated data is empty
// for version 1. Returns ciphertext with the 16-byte GCM tag appended.
func seal(key, nonce, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptocore: new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptocore: new gcm: %w", err)
	}
	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// open decrypts ciphertext (with appended tag) under key and nonce. A tag
// mismatch — including a wrong key from a wrong password — surfaces as
// ErrAuth, never as a parse or version error, so callers can distinguish
// "wrong password" from "corrupted artifact".
func open(key, nonce, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptocore: new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptocore: new gcm: %w", err)
	}
	if len(ciphertext) < aead.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext shorter than tag", ErrParse)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuth
	}
	return plaintext, nil
}
