// Package dispatch reads an input (literal bytes, a file path, or a
// scanned-image callback), classifies the envelope it contains, and routes
// it to the correct decryption or reconstruction path.
package dispatch

import (
	"errors"
	"fmt"
	"os"

	"seedqr/internal/artifact"
	"seedqr/internal/cryptocore"
	"seedqr/internal/secret"
	"seedqr/internal/shamir"
)

// ErrWrongEntryPoint is returned when DecryptDispatch is handed a
// ShamirShare payload, or ReconstructDispatch is handed anything but a
// ShamirShare.
var ErrWrongEntryPoint = errors.New("dispatch: wrong entry point for this payload type")

// Source abstracts where dispatch bytes come from: a literal byte slice, a
// filesystem path, or a scanned-image callback. File I/O and camera capture
// are external collaborators; Source only needs to produce bytes, however
// they were obtained.
type Source interface {
	Bytes() ([]byte, error)
}

// BytesSource wraps a literal byte slice already in memory.
type BytesSource []byte

func (b BytesSource) Bytes() ([]byte, error) { return b, nil }

// StringSource wraps a literal string already in memory (e.g. pasted QR
// JSON).
type StringSource string

func (s StringSource) Bytes() ([]byte, error) { return []byte(s), nil }

// FileSource reads bytes from a filesystem path.
type FileSource string

func (f FileSource) Bytes() ([]byte, error) {
	b, err := os.ReadFile(string(f))
	if err != nil {
		return nil, fmt.Errorf("dispatch: read %s: %w", string(f), err)
	}
	return b, nil
}

// CallbackSource wraps an external scanner (e.g. a camera decode loop) that
// produces bytes on demand.
type CallbackSource func() ([]byte, error)

func (c CallbackSource) Bytes() ([]byte, error) { return c() }

// PasswordProvider supplies a password on demand, deferring the actual
// prompt/terminal interaction to an external collaborator.
type PasswordProvider func() (string, error)

// DecryptResult is the outcome of DecryptDispatch.
type DecryptResult struct {
	Plaintext *secret.Text
	IsReal    bool // always true for non-layered paths
}

// DecryptDispatch obtains bytes, classifies them, and routes LayeredSecret
// to layered decryption or EncryptedSecret to standard decryption. A
// ShamirShare payload is refused.
func DecryptDispatch(src Source, password PasswordProvider) (DecryptResult, error) {
	data, err := src.Bytes()
	if err != nil {
		return DecryptResult{}, err
	}

	classified, err := artifact.Classify(data)
	if err != nil {
		return DecryptResult{}, err
	}

	pw, err := password()
	if err != nil {
		return DecryptResult{}, err
	}

	switch classified.Kind {
	case artifact.TypeEncryptedSecret:
		pt, err := cryptocore.Decrypt(*classified.Encrypted, pw)
		if err != nil {
			return DecryptResult{}, err
		}
		return DecryptResult{Plaintext: pt, IsReal: true}, nil

	case artifact.TypeLayeredSecret:
		pt, isReal, err := cryptocore.DecryptLayered(*classified.Layered, pw)
		if err != nil {
			return DecryptResult{}, err
		}
		return DecryptResult{Plaintext: pt, IsReal: isReal}, nil

	case artifact.TypeShamirShare:
		return DecryptResult{}, ErrWrongEntryPoint

	default:
		return DecryptResult{}, artifact.ErrParse
	}
}

// ReconstructDispatch obtains each source, classifies it (must be
// ShamirShare), deduplicates on share_id, and validates compatibility,
// stopping once threshold shares are collected or sources are exhausted. It
// then reconstructs; fewer than threshold accepted shares is an error.
func ReconstructDispatch(sources []Source, maxShares int) ([]byte, error) {
	collector := NewShareCollector(maxShares)

	for _, src := range sources {
		data, err := src.Bytes()
		if err != nil {
			collector.RejectIOError(err)
			continue
		}

		classified, err := artifact.Classify(data)
		if err != nil {
			collector.Reject(err)
			continue
		}
		if classified.Kind != artifact.TypeShamirShare {
			collector.Reject(ErrWrongEntryPoint)
			continue
		}

		if done := collector.Offer(*classified.Shamir); done {
			break
		}
	}

	shares, err := collector.Finish()
	if err != nil {
		return nil, err
	}
	return shamir.Reconstruct(shares)
}
