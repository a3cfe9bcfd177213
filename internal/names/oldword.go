package names

import (
	"fmt"

	"bog/internal/crypto"
	"bog/internal/domain"
)

// Oldword is a detached signature buffer.
//
// A silent word is all zero and never verifies; a word becomes spoken when a
// Truename signs into it or when it is built from received bytes.
type Oldword struct {
	runes  [crypto.SignatureSize]byte
	spoken bool
}

// SilentOldword returns an unsigned, all-zero word.
func SilentOldword() Oldword { return Oldword{} }

// OldwordFromRunes wraps a signature received from elsewhere.
func OldwordFromRunes(b []byte) (Oldword, error) {
	var w Oldword
	if len(b) != crypto.SignatureSize {
		return w, fmt.Errorf("oldword: want %d bytes, got %d", crypto.SignatureSize, len(b))
	}
	copy(w.runes[:], b)
	w.spoken = true
	return w, nil
}

// Spoken reports whether w holds a signature rather than silence.
func (w Oldword) Spoken() bool { return w.spoken }

// Runes returns a copy of the signature bytes.
func (w Oldword) Runes() []byte {
	out := make([]byte, len(w.runes))
	copy(out, w.runes[:])
	return out
}

func know(pub domain.PublicKey, runes []byte, w Oldword) Stuff {
	if !w.spoken {
		return Rejected
	}
	if err := crypto.Verify(w.runes[:], runes, pub); err != nil {
		return Rejected
	}
	return Affirmed
}
