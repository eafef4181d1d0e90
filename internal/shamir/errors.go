package shamir

import "errors"

var (
	// ErrParameters is returned when threshold/total_shares are out of the
	// valid range (0 < k <= n <= 255).
	ErrParameters = errors.New("shamir: invalid threshold/total_shares")

	// ErrInsufficientShares is returned by Reconstruct when fewer than
	// threshold shares are supplied.
	ErrInsufficientShares = errors.New("shamir: insufficient shares")

	// ErrInconsistentShares is returned when shares disagree on version,
	// threshold, or total_shares.
	ErrInconsistentShares = errors.New("shamir: inconsistent share parameters")

	// ErrDuplicateShareID is returned when two shares in the same set carry
	// the same share_id.
	ErrDuplicateShareID = errors.New("shamir: duplicate share id")

	// ErrInvalidShareID is returned when share_id is 0 or exceeds
	// total_shares.
	ErrInvalidShareID = errors.New("shamir: invalid share id")

	// ErrMalformedShareData is returned when share_data is not valid
	// base64 or decodes to an unexpected length.
	ErrMalformedShareData = errors.New("shamir: malformed share data")

	// ErrEmptyShareSet is returned for an empty share slice where at least
	// one share is required.
	ErrEmptyShareSet = errors.New("shamir: no shares provided")

	// ErrVersion is returned for an unsupported share version.
	ErrVersion = errors.New("shamir: unsupported version")

	// ErrEncoding is returned when reconstructed bytes are not valid UTF-8.
	ErrEncoding = errors.New("shamir: reconstructed data is not valid UTF-8")
)

// ErrCrossSplitMixPossible documents a known gap: version 1 ShamirShare
// carries no session/split identifier, so ValidateShares' (version,
// threshold, total_shares) agreement check can be satisfied by shares drawn
// from two different splits that happen to share those parameters.
// Reconstruct will then produce wrong bytes, or fail only because those
// bytes are not valid UTF-8 (ErrEncoding), rather than report the mix. A
// version-2 share format is the place to close this gap with an explicit
// split ID.
var ErrCrossSplitMixPossible = errors.New("shamir: version 1 cannot detect shares mixed across splits with identical parameters")
