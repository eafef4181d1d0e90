package cryptocore

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// KeySize is the length in bytes of a derived symmetric key (C2 contract).
const KeySize = 32

// saltSize is the number of random bytes drawn per encryption for the KDF
// salt.
const saltSize = 16

// Argon2 parameters for version 1 artifacts. Fixed by version: a future
// version number would carry different constants rather than a per-artifact
// parameter field, so there is no key-stretching negotiation per artifact.
const (
	argonTime    = 2
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 1
)

// generateSalt draws saltSize cryptographically random bytes from the
// process-wide RNG (C1). Every call is independent; nothing is cached.
func generateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("cryptocore: generate salt: %w", err)
	}
	return salt, nil
}

// encodeSaltString renders raw salt bytes in the PHC "salt string" form:
// printable ASCII, base64 without '=' padding.
func encodeSaltString(salt []byte) string {
	return base64.RawStdEncoding.EncodeToString(salt)
}

// decodeSaltString parses the PHC salt string form back to raw bytes.
func decodeSaltString(s string) ([]byte, error) {
	salt, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrParse, err)
	}
	return salt, nil
}

// deriveKey runs Argon2id over password and salt, producing a KeySize-byte
// key. The defense-in-depth length check guards against a future parameter
// change shortening the output; it never fires at today's fixed parameters.
func deriveKey(password []byte, salt []byte) ([]byte, error) {
	key := argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, KeySize)
	if len(key) < KeySize {
		return nil, ErrKeyTooShort
	}
	return key, nil
}
