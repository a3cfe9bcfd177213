package names

import (
	"fmt"
	"io"

	"bog/internal/crypto"
	"bog/internal/domain"
)

// Truename is a signing-capable identity. Its secret key leaves memory only
// through WriteSecret.
type Truename struct {
	public domain.PublicKey
	secret domain.SecretKey
}

// GenerateTruename creates a fresh identity from the signature primitive.
func GenerateTruename() (Truename, error) {
	pub, sec, err := crypto.GenerateKeypair()
	if err != nil {
		return Truename{}, fmt.Errorf("generate truename: %w", err)
	}
	return Truename{public: pub, secret: sec}, nil
}

// TruenameOf assembles an identity from a key pair, checking that pub is the
// public half of sec.
func TruenameOf(pub domain.PublicKey, sec domain.SecretKey) (Truename, error) {
	if !crypto.Matches(pub, sec) {
		return Truename{}, fmt.Errorf("%w: public key does not match secret key", ErrMalformedRecord)
	}
	return Truename{public: pub, secret: sec}, nil
}

// String identifies t by fingerprint only.
func (t Truename) String() string { return "Truename(" + string(t.Fingerprint()) + ")" }

// GoString keeps the secret out of %#v.
func (t Truename) GoString() string { return t.String() }

// IsZero reports whether t was never generated or loaded.
func (t Truename) IsZero() bool { return t.public == domain.PublicKey{} }

// PublicKey returns the identity's public key.
func (t Truename) PublicKey() domain.PublicKey { return t.public }

// Fingerprint returns the short handle of the public key.
func (t Truename) Fingerprint() domain.Fingerprint { return crypto.Fingerprint(t.public) }

// Cryptoname projects t onto its public half.
func (t Truename) Cryptoname() Cryptoname { return Cryptoname{public: t.public} }

// WriteSecret serializes the full record including the SECRET line. The
// caller must restrict access to w before calling.
func (t Truename) WriteSecret(w io.Writer) error {
	return writeRecord(w, record{public: t.public, secret: t.secret, hasSecret: true})
}

// VerifySelf checks a self-attestation against t's public key.
func (t Truename) VerifySelf(word Oldword) Stuff {
	return know(t.public, t.public[:], word)
}

// Verify checks word as a signature over runes with t's public key.
func (t Truename) Verify(runes []byte, word Oldword) Stuff {
	return know(t.public, runes, word)
}

// SignSelf signs t's own public key bytes.
func (t Truename) SignSelf() Oldword {
	return t.Sign(t.public[:])
}

// Sign produces a detached signature over runes. It panics if the primitive
// fails, since buffers are always correctly sized and a failure means the
// key or the process state is corrupt.
func (t Truename) Sign(runes []byte) Oldword {
	word := SilentOldword()
	if err := crypto.Sign(word.runes[:], runes, t.secret); err != nil {
		panic(fmt.Sprintf("names: sign with %s: %v", t.Fingerprint(), err))
	}
	word.spoken = true
	return word
}

// ReadTruename parses a secret-bearing record.
func ReadTruename(r io.Reader) (Truename, error) {
	rec, err := readRecord(r)
	if err != nil {
		return Truename{}, err
	}
	if !rec.hasSecret {
		return Truename{}, fmt.Errorf("%w: missing %s line", ErrMalformedRecord, secretLabel)
	}
	t, err := TruenameOf(rec.public, rec.secret)
	crypto.Wipe(rec.secret[:])
	return t, err
}
