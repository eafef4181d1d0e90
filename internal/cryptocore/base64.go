package cryptocore

import (
	"encoding/base64"
	"fmt"
)

// Nonce and ciphertext use the standard base64 alphabet with padding;
// decoding accepts either padded or unpadded input since the environment
// producing an artifact (hand-edited, or from another decoder) may omit
// padding, but encoding always emits the padded form.

func encodeNonce(nonce []byte) string {
	return base64.StdEncoding.EncodeToString(nonce)
}

func decodeNonce(s string) ([]byte, error) {
	nonce, err := decodeFlexibleBase64(s)
	if err != nil {
		return nil, fmt.Errorf("%w: nonce: %v", ErrParse, err)
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrParse, NonceSize, len(nonce))
	}
	return nonce, nil
}

func encodeCiphertext(ct []byte) string {
	return base64.StdEncoding.EncodeToString(ct)
}

func decodeCiphertext(s string) ([]byte, error) {
	ct, err := decodeFlexibleBase64(s)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext: %v", ErrParse, err)
	}
	if len(ct) < gcmTagSize {
		return nil, fmt.Errorf("%w: ciphertext shorter than tag", ErrParse)
	}
	return ct, nil
}

// gcmTagSize is the AES-GCM authentication tag length.
const gcmTagSize = 16

// decodeFlexibleBase64 accepts both padded and unpadded standard-alphabet
// base64, so decoders tolerate no-padding and padded inputs equally.
func decodeFlexibleBase64(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}
