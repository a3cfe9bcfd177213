package names

import (
	"bytes"

	"bog/internal/crypto"
)

// Usename is a human-chosen label for an identity.
type Usename struct {
	runes []byte
}

// NewUsename copies b into a Usename. It reports false unless
// 2 < len(b) < crypto.SignatureSize.
//
// The upper bound comes from the signature buffer size and is kept for
// compatibility with names already on disk.
func NewUsename(b []byte) (Usename, bool) {
	if len(b) <= 2 || len(b) >= crypto.SignatureSize {
		return Usename{}, false
	}
	return Usename{runes: bytes.Clone(b)}, true
}

// Runes returns a copy of the label bytes.
func (u Usename) Runes() []byte { return bytes.Clone(u.runes) }

// String returns the label as text.
func (u Usename) String() string { return string(u.runes) }

// IsZero reports whether u was never constructed.
func (u Usename) IsZero() bool { return len(u.runes) == 0 }

// Equal reports whether u and other carry the same bytes.
func (u Usename) Equal(other Usename) bool { return bytes.Equal(u.runes, other.runes) }
