// Package qrcode renders a QR payload envelope to a PNG image. QR rendering
// and scanning are outside the core protocol: this package is a thin
// peripheral adapter that the core never imports, kept separate so
// cmd/seedqr can turn an artifact.QRPayload into something a phone camera
// can actually read.
package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"seedqr/internal/artifact"
)

// DefaultSize is the PNG side length in pixels for a rendered QR code.
const DefaultSize = 512

// EncodePNG renders the given artifact payload to a QR code PNG at Medium
// error correction. It fails if the encoded JSON exceeds what a QR code can
// carry at that level — large envelopes, e.g. many-word layered secrets, may
// need EncodePNGLowDensity instead.
func EncodePNG(payload artifact.QRPayload, size int) ([]byte, error) {
	data, err := artifact.Encode(payload)
	if err != nil {
		return nil, fmt.Errorf("qrcode: encode payload: %w", err)
	}
	if size <= 0 {
		size = DefaultSize
	}

	png, err := qrcode.Encode(string(data), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: render: %w", err)
	}
	return png, nil
}

// EncodePNGLowDensity renders with Low error correction, for payloads large
// enough that Medium correction would otherwise overflow the QR symbol.
func EncodePNGLowDensity(payload artifact.QRPayload, size int) ([]byte, error) {
	data, err := artifact.Encode(payload)
	if err != nil {
		return nil, fmt.Errorf("qrcode: encode payload: %w", err)
	}
	if size <= 0 {
		size = DefaultSize
	}

	png, err := qrcode.Encode(string(data), qrcode.Low, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: render: %w", err)
	}
	return png, nil
}
