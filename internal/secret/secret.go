// Package secret holds the opaque in-memory representation of user secrets
// and derived key material, and the zeroization discipline applied to both.
package secret

// Text is an opaque UTF-8 secret held in memory only as long as it takes to
// encrypt, split, or emit it. Callers MUST call Zero once the value is no
// longer needed, on every exit path including error returns.
type Text struct {
	b []byte
}

// NewText copies s into a Text. The caller's own copy of s is not touched.
func NewText(s string) *Text {
	return &Text{b: []byte(s)}
}

// String returns the secret as a string. The returned string still aliases
// Go's immutable string representation and cannot itself be zeroized; callers
// should use it only transiently (e.g. to hand off to an encryption call) and
// never retain it past the Text's own lifetime.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return string(t.b)
}

// Bytes returns the underlying buffer. Mutating it mutates the Text.
func (t *Text) Bytes() []byte {
	if t == nil {
		return nil
	}
	return t.b
}

// Zero overwrites the secret's backing buffer with zeroes. Safe to call
// multiple times and on a nil Text.
func (t *Text) Zero() {
	if t == nil {
		return
	}
	for i := range t.b {
		t.b[i] = 0
	}
}

// ZeroBytes overwrites an arbitrary key or plaintext buffer in place. Used
// for the 32-byte derived key buffer that cryptocore produces internally,
// which has no Text wrapper of its own.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
