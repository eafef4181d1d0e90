package artifact

import "encoding/json"

// WrapEncrypted builds the outer QR payload for a single-password envelope.
func WrapEncrypted(d EncryptedData) (QRPayload, error) {
	content, err := json.Marshal(d)
	if err != nil {
		return QRPayload{}, err
	}
	return QRPayload{DataType: TypeEncryptedSecret, Content: string(content)}, nil
}

// WrapShamir builds the outer QR payload for a single share.
func WrapShamir(s ShamirShare) (QRPayload, error) {
	content, err := json.Marshal(s)
	if err != nil {
		return QRPayload{}, err
	}
	return QRPayload{DataType: TypeShamirShare, Content: string(content)}, nil
}

// WrapLayered builds the outer QR payload for a layered (decoy+hidden)
// envelope.
func WrapLayered(l LayeredData) (QRPayload, error) {
	content, err := json.Marshal(l)
	if err != nil {
		return QRPayload{}, err
	}
	return QRPayload{DataType: TypeLayeredSecret, Content: string(content)}, nil
}

// Encode serializes a QRPayload to the UTF-8 bytes that get rendered into a
// QR image.
func Encode(p QRPayload) ([]byte, error) {
	return json.Marshal(p)
}

// Classified is the result of Classify: exactly one of Encrypted, Shamir,
// or Layered is non-nil, matching Kind.
type Classified struct {
	Kind      DataType
	Encrypted *EncryptedData
	Shamir    *ShamirShare
	Layered   *LayeredData
}

// Classify first tries the outer QR envelope and dispatches on data_type;
// on parse failure, it falls back to the inner envelope shapes directly
// (for legacy/hand-edited inputs), trying EncryptedData, then ShamirShare,
// then LayeredData in turn. Returns ErrParse only if every attempt fails.
func Classify(data []byte) (Classified, error) {
	var outer QRPayload
	if err := json.Unmarshal(data, &outer); err == nil && outer.DataType != "" {
		switch outer.DataType {
		case TypeEncryptedSecret:
			var d EncryptedData
			if err := json.Unmarshal([]byte(outer.Content), &d); err == nil {
				return Classified{Kind: TypeEncryptedSecret, Encrypted: &d}, nil
			}
		case TypeShamirShare:
			var s ShamirShare
			if err := json.Unmarshal([]byte(outer.Content), &s); err == nil {
				return Classified{Kind: TypeShamirShare, Shamir: &s}, nil
			}
		case TypeLayeredSecret:
			var l LayeredData
			if err := json.Unmarshal([]byte(outer.Content), &l); err == nil {
				return Classified{Kind: TypeLayeredSecret, Layered: &l}, nil
			}
		}
	}

	// Legacy/hand-edited fallback: try inner shapes directly, in order.
	var d EncryptedData
	if err := json.Unmarshal(data, &d); err == nil && d.Version != 0 && d.Ciphertext != "" {
		return Classified{Kind: TypeEncryptedSecret, Encrypted: &d}, nil
	}

	var s ShamirShare
	if err := json.Unmarshal(data, &s); err == nil && s.Version != 0 && s.ShareData != "" {
		return Classified{Kind: TypeShamirShare, Shamir: &s}, nil
	}

	var l LayeredData
	if err := json.Unmarshal(data, &l); err == nil && l.Version != 0 && l.DecoyLayer.Ciphertext != "" {
		return Classified{Kind: TypeLayeredSecret, Layered: &l}, nil
	}

	return Classified{}, ErrParse
}
