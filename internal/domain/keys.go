package domain

import "fmt"

// PublicKey is an Ed25519 verifying key.
type PublicKey [32]byte

// SecretKey is an Ed25519 signing key in its 64-byte seed||public form.
type SecretKey [64]byte

func (k PublicKey) Slice() []byte { return k[:] }
func (k SecretKey) Slice() []byte { return k[:] }

// String keeps secret material out of %v and %s.
func (k SecretKey) String() string { return "SecretKey(redacted)" }

// GoString keeps secret material out of %#v.
func (k SecretKey) GoString() string { return k.String() }

func MustPublicKey(b []byte) PublicKey {
	if len(b) != 32 {
		panic(fmt.Errorf("Ed25519 public: want 32 bytes, got %d", len(b)))
	}
	var out PublicKey
	copy(out[:], b)
	return out
}

func MustSecretKey(b []byte) SecretKey {
	if len(b) != 64 {
		panic(fmt.Errorf("Ed25519 secret: want 64 bytes, got %d", len(b)))
	}
	var out SecretKey
	copy(out[:], b)
	return out
}

// Fingerprint is the short printable handle of a public key.
type Fingerprint string

func (f Fingerprint) String() string { return string(f) }
