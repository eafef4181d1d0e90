package artifact

import (
	"encoding/json"
	"testing"
)

func TestClassifyRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		kind DataType
		wrap func() (QRPayload, error)
	}{
		{
			name: "encrypted",
			kind: TypeEncryptedSecret,
			wrap: func() (QRPayload, error) {
				return WrapEncrypted(EncryptedData{Version: 1, Salt: "c2FsdA", Nonce: "bm9uY2VieXRlcw==", Ciphertext: "Y2lwaGVydGV4dA=="})
			},
		},
		{
			name: "shamir",
			kind: TypeShamirShare,
			wrap: func() (QRPayload, error) {
				return WrapShamir(ShamirShare{Version: 1, ShareID: 1, Threshold: 2, TotalShares: 3, ShareData: "AQI="})
			},
		},
		{
			name: "layered",
			kind: TypeLayeredSecret,
			wrap: func() (QRPayload, error) {
				return WrapLayered(LayeredData{
					Version:    1,
					DecoyLayer: EncryptedData{Version: 1, Salt: "c2FsdA", Nonce: "bm9uY2VieXRlcw==", Ciphertext: "Y2lwaGVydGV4dA=="},
				})
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := tc.wrap()
			if err != nil {
				t.Fatalf("wrap: %v", err)
			}
			encoded, err := Encode(payload)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			classified, err := Classify(encoded)
			if err != nil {
				t.Fatalf("classify: %v", err)
			}
			if classified.Kind != tc.kind {
				t.Fatalf("kind = %v, want %v", classified.Kind, tc.kind)
			}
		})
	}
}

func TestClassifyLegacyInnerShape(t *testing.T) {
	d := EncryptedData{Version: 1, Salt: "c2FsdA", Nonce: "bm9uY2VieXRlcw==", Ciphertext: "Y2lwaGVydGV4dA=="}

	innerJSON, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal inner: %v", err)
	}
	classified, err := Classify(innerJSON)
	if err != nil {
		t.Fatalf("classify legacy shape: %v", err)
	}
	if classified.Kind != TypeEncryptedSecret || classified.Encrypted == nil {
		t.Fatalf("expected encrypted classification, got %+v", classified)
	}
}

func TestClassifyGarbageFails(t *testing.T) {
	if _, err := Classify([]byte("not json at all")); err == nil {
		t.Fatal("expected ErrParse for garbage input")
	}
}
