// Package shamir implements Shamir secret sharing over GF(256), splitting
// and reconstructing a secret per byte with a standard log/exp-table field.
package shamir

import (
	"crypto/rand"
	"fmt"
	"unicode/utf8"

	"seedqr/internal/artifact"
)

// maxShares is the GF(256) field-size bound: total_shares cannot exceed 255
// distinct nonzero field elements.
const maxShares = 255

// Split divides plaintext into totalShares shares, any threshold of which
// reconstruct it. For each plaintext byte it draws threshold-1 random
// coefficients from the process RNG, builds a degree-(threshold-1)
// polynomial with that byte as the constant term, and evaluates it at
// x = 1..totalShares.
func Split(plaintext []byte, threshold, totalShares int) ([]artifact.ShamirShare, error) {
	if threshold <= 0 || totalShares < threshold || totalShares > maxShares {
		return nil, ErrParameters
	}
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("%w: empty secret", ErrParameters)
	}

	// perShareSequences[i] accumulates share i+1's (x, y) pairs across all
	// plaintext bytes, in plaintext order.
	perShareSequences := make([][]point, totalShares)
	for i := range perShareSequences {
		perShareSequences[i] = make([]point, 0, len(plaintext))
	}

	coeffs := make([]byte, threshold)
	for _, secretByte := range plaintext {
		coeffs[0] = secretByte
		if _, err := rand.Read(coeffs[1:]); err != nil {
			return nil, fmt.Errorf("shamir: draw coefficients: %w", err)
		}

		for i := 0; i < totalShares; i++ {
			x := byte(i + 1)
			y := gfEvalPoly(coeffs, x)
			perShareSequences[i] = append(perShareSequences[i], point{x: x, y: y})
		}
	}

	shares := make([]artifact.ShamirShare, totalShares)
	for i := range shares {
		shares[i] = artifact.ShamirShare{
			Version:     artifact.CurrentVersion,
			ShareID:     i + 1,
			Threshold:   threshold,
			TotalShares: totalShares,
			ShareData:   encodeShareData(perShareSequences[i]),
		}
	}
	return shares, nil
}

// Reconstruct recovers the original plaintext from a set of shares.
func Reconstruct(shares []artifact.ShamirShare) ([]byte, error) {
	if err := ValidateShares(shares); err != nil {
		return nil, err
	}

	threshold := shares[0].Threshold
	if len(shares) < threshold {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientShares, threshold, len(shares))
	}

	decoded := make([][]point, len(shares))
	length := -1
	for i, s := range shares {
		pairs, err := decodeShareData(s.ShareData)
		if err != nil {
			return nil, err
		}
		if length == -1 {
			length = len(pairs)
		} else if len(pairs) != length {
			return nil, fmt.Errorf("%w: share %d has length %d, want %d", ErrMalformedShareData, s.ShareID, len(pairs), length)
		}
		decoded[i] = pairs
	}

	secretBytes := make([]byte, length)
	points := make([]point, len(decoded))
	for j := 0; j < length; j++ {
		for i, pairs := range decoded {
			points[i] = pairs[j]
		}
		secretBytes[j] = gfLagrangeAtZero(points)
	}

	if !utf8.Valid(secretBytes) {
		return nil, ErrEncoding
	}
	return secretBytes, nil
}

// ValidateShares is a cheap pre-flight check that does not decode per-byte
// lengths (Reconstruct performs that check).
func ValidateShares(shares []artifact.ShamirShare) error {
	if len(shares) == 0 {
		return ErrEmptyShareSet
	}

	first := shares[0]
	if first.Version != artifact.CurrentVersion {
		return fmt.Errorf("%w: %d", ErrVersion, first.Version)
	}

	seen := make(map[int]struct{}, len(shares))
	for _, s := range shares {
		if s.Version != first.Version || s.Threshold != first.Threshold || s.TotalShares != first.TotalShares {
			return ErrInconsistentShares
		}
		if s.ShareID <= 0 || s.ShareID > s.TotalShares {
			return fmt.Errorf("%w: %d (should be 1-%d)", ErrInvalidShareID, s.ShareID, s.TotalShares)
		}
		if _, err := decodeFlexibleBase64(s.ShareData); err != nil {
			return fmt.Errorf("%w: share %d: %v", ErrMalformedShareData, s.ShareID, err)
		}
		if _, dup := seen[s.ShareID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateShareID, s.ShareID)
		}
		seen[s.ShareID] = struct{}{}
	}
	return nil
}

// Summary renders a human-readable description of a share set's
// configuration.
func Summary(shares []artifact.ShamirShare) string {
	if len(shares) == 0 {
		return "no shares provided"
	}
	first := shares[0]
	return fmt.Sprintf(
		"Shamir configuration: %d total shares, threshold %d, version %d; %d share(s) in this set. "+
			"Reconstruction needs at least %d of %d shares.",
		first.TotalShares, first.Threshold, first.Version, len(shares), first.Threshold, first.TotalShares,
	)
}
