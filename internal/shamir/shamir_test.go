package shamir

import (
	"errors"
	"testing"

	"seedqr/internal/artifact"
)

const testSeed = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// With k=2 and n=3 this checks every size-k subset, plus the full set.
func TestSplitReconstructRoundTrip(t *testing.T) {
	shares, err := Split([]byte("hello"), 2, 3)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(shares) != 3 {
		t.Fatalf("expected 3 shares, got %d", len(shares))
	}

	ids := map[int]bool{}
	for _, s := range shares {
		ids[s.ShareID] = true
	}
	for _, id := range []int{1, 2, 3} {
		if !ids[id] {
			t.Fatalf("missing share id %d", id)
		}
	}

	subsets := [][]int{{0, 1}, {1, 2}, {0, 2}, {0, 1, 2}}
	for _, subset := range subsets {
		var subShares []artifact.ShamirShare
		for _, idx := range subset {
			subShares = append(subShares, shares[idx])
		}
		got, err := Reconstruct(subShares)
		if err != nil {
			t.Fatalf("reconstruct subset %v: %v", subset, err)
		}
		if string(got) != "hello" {
			t.Fatalf("subset %v: got %q, want hello", subset, got)
		}
	}
}

func TestSplitSingleShareFailsReconstruct(t *testing.T) {
	shares, err := Split([]byte("hello"), 2, 3)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if _, err := Reconstruct(shares[:1]); !errors.Is(err, ErrInsufficientShares) {
		t.Fatalf("expected ErrInsufficientShares, got %v", err)
	}
}

// A single-byte secret with k=n=3: each share holds exactly one (x, y) pair.
func TestSplitSingleByteSecret(t *testing.T) {
	shares, err := Split([]byte("A"), 3, 3)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	for _, s := range shares {
		pairs, err := decodeShareData(s.ShareData)
		if err != nil {
			t.Fatalf("decode share %d: %v", s.ShareID, err)
		}
		if len(pairs) != 1 {
			t.Fatalf("share %d: expected 1 pair, got %d", s.ShareID, len(pairs))
		}
	}

	got, err := Reconstruct(shares)
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	if len(got) != 1 || got[0] != 'A' {
		t.Fatalf("got %v, want [0x41]", got)
	}
}

func TestSplitFullSeedPhrase(t *testing.T) {
	shares, err := Split([]byte(testSeed), 3, 5)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	got, err := Reconstruct(shares[:3])
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	if string(got) != testSeed {
		t.Fatalf("round trip mismatch")
	}
}

func TestInsufficientShares(t *testing.T) {
	shares, err := Split([]byte("test secret"), 3, 5)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if _, err := Reconstruct(shares[:2]); !errors.Is(err, ErrInsufficientShares) {
		t.Fatalf("expected ErrInsufficientShares, got %v", err)
	}
}

func TestValidateRejectsParameterMismatch(t *testing.T) {
	a, err := Split([]byte("hello"), 2, 3)
	if err != nil {
		t.Fatalf("split a: %v", err)
	}
	b, err := Split([]byte("world"), 3, 4)
	if err != nil {
		t.Fatalf("split b: %v", err)
	}

	mixed := []artifact.ShamirShare{a[0], b[0]}
	if err := ValidateShares(mixed); !errors.Is(err, ErrInconsistentShares) {
		t.Fatalf("expected ErrInconsistentShares, got %v", err)
	}
}

// A cross-split mix with identical parameters passes parameter validation —
// validation alone cannot detect it.
func TestCrossSplitMixPassesValidation(t *testing.T) {
	s1, err := Split([]byte("a"), 2, 3)
	if err != nil {
		t.Fatalf("split s1: %v", err)
	}
	s2, err := Split([]byte("a"), 2, 3)
	if err != nil {
		t.Fatalf("split s2: %v", err)
	}

	mixed := []artifact.ShamirShare{s1[0], s2[1]}
	if err := ValidateShares(mixed); err != nil {
		t.Fatalf("expected parameter validation to pass for mixed shares despite being a cross-split mix, got %v", err)
	}

	// Reconstruct either errors (UTF-8 failure) or silently returns some
	// byte value. It is not guaranteed to differ from the original "a" by
	// chance (1/256), so this only demonstrates that validation alone
	// cannot reject the mix; it does not assert on the recovered byte.
	if _, err := Reconstruct(mixed); err != nil && !errors.Is(err, ErrEncoding) {
		t.Fatalf("unexpected error kind from cross-split reconstruct: %v", err)
	}
}

func TestValidateRejectsDuplicateShareID(t *testing.T) {
	shares, err := Split([]byte("hello"), 2, 3)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	dup := []artifact.ShamirShare{shares[0], shares[0]}
	if err := ValidateShares(dup); !errors.Is(err, ErrDuplicateShareID) {
		t.Fatalf("expected ErrDuplicateShareID, got %v", err)
	}
}

func TestValidateRejectsEmptySet(t *testing.T) {
	if err := ValidateShares(nil); !errors.Is(err, ErrEmptyShareSet) {
		t.Fatalf("expected ErrEmptyShareSet, got %v", err)
	}
}

func TestSplitRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name    string
		k, n    int
		wantErr error
	}{
		{"zero threshold", 0, 3, ErrParameters},
		{"threshold over total", 4, 3, ErrParameters},
		{"total over field size", 2, 256, ErrParameters},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Split([]byte("x"), tc.k, tc.n); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
