package cryptocore

import "errors"

var (
	// ErrVersion is returned when an envelope carries an unsupported version.
	ErrVersion = errors.New("cryptocore: unsupported version")

	// ErrParse is returned when a field is malformed (bad base64, wrong
	// nonce length, bad salt string).
	ErrParse = errors.New("cryptocore: malformed envelope field")

	// ErrAuth is returned when AEAD tag verification fails, which also
	// covers a wrong password.
	ErrAuth = errors.New("cryptocore: authentication failed")

	// ErrEncoding is returned when decrypted plaintext is not valid UTF-8.
	ErrEncoding = errors.New("cryptocore: decrypted data is not valid UTF-8")

	// ErrInput is returned for empty or otherwise invalid caller input
	// before any cryptographic step runs.
	ErrInput = errors.New("cryptocore: invalid input")

	// ErrDecoyPasswordCollision is returned by EncryptWithDecoy when the
	// real and decoy passwords are identical, which would make the hidden
	// layer permanently unreachable.
	ErrDecoyPasswordCollision = errors.New("cryptocore: real and decoy passwords must differ")

	// ErrKeyTooShort is the defense-in-depth check against a future KDF
	// parameter change that could shorten the derived key below 32 bytes.
	ErrKeyTooShort = errors.New("cryptocore: derived key shorter than required")
)
