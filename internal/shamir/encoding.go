package shamir

import (
	"encoding/base64"
	"fmt"
)

// share_data binary layout (pre-base64): a flat sequence of (x byte, y
// byte) pairs, one pair per plaintext byte, in plaintext order —
// 2*len(plaintext) bytes total. x is constant across all pairs within one
// share (it equals share_id) but is still stored per-pair so the wire
// format stays a uniform array of pairs rather than a header-plus-values
// shape; this keeps the encoder and decoder trivial and keeps the per-byte
// polynomial model explicit in the bytes themselves.

// encodeShareData serializes one share's ordered (x, y) pairs and base64
// encodes the result with the standard padded alphabet.
func encodeShareData(pairs []point) string {
	raw := make([]byte, 0, 2*len(pairs))
	for _, p := range pairs {
		raw = append(raw, p.x, p.y)
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// decodeShareData parses a base64-encoded (x, y) pair sequence. Accepts
// both padded and unpadded base64.
func decodeShareData(s string) ([]point, error) {
	raw, err := decodeFlexibleBase64(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedShareData, err)
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("%w: odd byte length %d", ErrMalformedShareData, len(raw))
	}
	pairs := make([]point, len(raw)/2)
	for i := range pairs {
		pairs[i] = point{x: raw[2*i], y: raw[2*i+1]}
	}
	return pairs, nil
}

func decodeFlexibleBase64(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}
