// Package cryptocore implements the password-based cryptographic core:
// Argon2 key derivation, AES-256-GCM authenticated encryption, and the
// layered decoy/hidden construction that realizes plausible deniability.
package cryptocore

import (
	"unicode/utf8"

	"seedqr/internal/artifact"
	"seedqr/internal/secret"
)

// Encrypt derives a fresh per-call key from password and seals plaintext
// under it, returning a self-contained envelope.
func Encrypt(plaintext *secret.Text, password string) (artifact.EncryptedData, error) {
	if plaintext == nil || len(plaintext.Bytes()) == 0 {
		return artifact.EncryptedData{}, ErrInput
	}

	salt, err := generateSalt()
	if err != nil {
		return artifact.EncryptedData{}, err
	}

	key, err := deriveKey([]byte(password), salt)
	if err != nil {
		return artifact.EncryptedData{}, err
	}
	defer secret.ZeroBytes(key)

	nonce, err := generateNonce()
	if err != nil {
		return artifact.EncryptedData{}, err
	}

	ciphertext, err := seal(key, nonce, plaintext.Bytes())
	if err != nil {
		return artifact.EncryptedData{}, err
	}

	return artifact.EncryptedData{
		Version:    artifact.CurrentVersion,
		Salt:       encodeSaltString(salt),
		Nonce:      encodeNonce(nonce),
		Ciphertext: encodeCiphertext(ciphertext),
	}, nil
}

// Decrypt recovers the plaintext an envelope holds, given the password it
// was encrypted under.
func Decrypt(envelope artifact.EncryptedData, password string) (*secret.Text, error) {
	if envelope.Version != artifact.CurrentVersion {
		return nil, ErrVersion
	}

	salt, err := decodeSaltString(envelope.Salt)
	if err != nil {
		return nil, err
	}

	nonce, err := decodeNonce(envelope.Nonce)
	if err != nil {
		return nil, err
	}

	ciphertext, err := decodeCiphertext(envelope.Ciphertext)
	if err != nil {
		return nil, err
	}

	key, err := deriveKey([]byte(password), salt)
	if err != nil {
		return nil, err
	}
	defer secret.ZeroBytes(key)

	plaintext, err := open(key, nonce, ciphertext)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(plaintext) {
		secret.ZeroBytes(plaintext)
		return nil, ErrEncoding
	}

	return secret.NewText(string(plaintext)), nil
}

// VerifyPassword reports whether password decrypts envelope, without
// returning the plaintext. Any error other than ErrAuth still propagates,
// since a corrupted artifact is not the same condition as a wrong password.
func VerifyPassword(envelope artifact.EncryptedData, password string) (bool, error) {
	pt, err := Decrypt(envelope, password)
	if err == nil {
		pt.Zero()
		return true, nil
	}
	if err == ErrAuth {
		return false, nil
	}
	return false, err
}

// EncryptWithDecoy independently encrypts the decoy and real layers under
// independent salts and nonces.
//
// Identical real and decoy passwords are refused with
// ErrDecoyPasswordCollision: DecryptLayered always tries the decoy layer
// first, so equal passwords would make the hidden layer permanently
// unreachable.
func EncryptWithDecoy(real *secret.Text, realPassword string, decoy *secret.Text, decoyPassword string, hint *string) (artifact.LayeredData, error) {
	if realPassword == decoyPassword {
		return artifact.LayeredData{}, ErrDecoyPasswordCollision
	}

	decoyLayer, err := Encrypt(decoy, decoyPassword)
	if err != nil {
		return artifact.LayeredData{}, err
	}

	hiddenLayer, err := Encrypt(real, realPassword)
	if err != nil {
		return artifact.LayeredData{}, err
	}

	return artifact.LayeredData{
		Version:     artifact.CurrentVersion,
		DecoyLayer:  decoyLayer,
		HiddenLayer: &hiddenLayer,
		DecoyHint:   hint,
	}, nil
}

// DecryptLayered tries the decoy layer first; on success it returns
// (plaintext, false). Only on decoy AEAD failure does it try the hidden
// layer, returning (plaintext, true) on success. If both fail (or no hidden
// layer exists), it returns ErrAuth.
func DecryptLayered(envelope artifact.LayeredData, password string) (*secret.Text, bool, error) {
	if pt, err := Decrypt(envelope.DecoyLayer, password); err == nil {
		return pt, false, nil
	} else if err != ErrAuth {
		return nil, false, err
	}

	if envelope.HiddenLayer != nil {
		if pt, err := Decrypt(*envelope.HiddenLayer, password); err == nil {
			return pt, true, nil
		} else if err != ErrAuth {
			return nil, false, err
		}
	}

	return nil, false, ErrAuth
}
