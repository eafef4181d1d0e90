// Package artifact defines the self-describing JSON envelopes persisted as
// QR payloads and the classification logic that routes an incoming payload
// to the right decoder.
package artifact

// EncryptedData is the envelope for single-password encryption.
type EncryptedData struct {
	Version    int    `json:"version"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// LayeredData carries a decoy layer and an optional hidden layer, realizing
// plausible deniability.
type LayeredData struct {
	Version     int            `json:"version"`
	DecoyLayer  EncryptedData  `json:"decoy_layer"`
	HiddenLayer *EncryptedData `json:"hidden_layer,omitempty"`
	DecoyHint   *string        `json:"decoy_hint,omitempty"`
}

// ShamirShare is one of N outputs of splitting a secret.
type ShamirShare struct {
	Version     int    `json:"version"`
	ShareID     int    `json:"share_id"`
	Threshold   int    `json:"threshold"`
	TotalShares int    `json:"total_shares"`
	ShareData   string `json:"share_data"`
}

// DataType classifies the inner content of a QR payload envelope.
type DataType string

const (
	TypeEncryptedSecret DataType = "EncryptedSecret"
	TypeShamirShare     DataType = "ShamirShare"
	TypeLayeredSecret   DataType = "LayeredSecret"
)

// QRPayload is the outer envelope actually encoded in every QR image. The
// double-serialization (Content is itself a JSON string) lets a decoder
// read DataType and dispatch without speculatively parsing three variant
// shapes.
type QRPayload struct {
	DataType DataType `json:"data_type"`
	Content  string   `json:"content"`
}

// CurrentVersion is the only version value this package emits. Classify does
// not check the version field; cryptocore.Decrypt and shamir.ValidateShares
// reject any other value.
const CurrentVersion = 1
