package names

import (
	"io"

	"bog/internal/crypto"
	"bog/internal/domain"
)

// Cryptoname is a verifiable identity without signing capability.
type Cryptoname struct {
	public domain.PublicKey
}

// CryptonameOf wraps a public key.
func CryptonameOf(pub domain.PublicKey) Cryptoname { return Cryptoname{public: pub} }

// PublicKey returns the identity's public key.
func (c Cryptoname) PublicKey() domain.PublicKey { return c.public }

// Fingerprint returns the short handle of the public key.
func (c Cryptoname) Fingerprint() domain.Fingerprint { return crypto.Fingerprint(c.public) }

// Equal reports whether both names carry the same public key.
func (c Cryptoname) Equal(other Cryptoname) bool { return c.public == other.public }

// Write serializes the public record: header line then the Public line.
func (c Cryptoname) Write(w io.Writer) error {
	return writeRecord(w, record{public: c.public})
}

// VerifySelf checks a self-attestation: word signed over the name's own
// public key bytes.
func (c Cryptoname) VerifySelf(word Oldword) Stuff {
	return know(c.public, c.public[:], word)
}

// Verify checks word as a signature over runes.
func (c Cryptoname) Verify(runes []byte, word Oldword) Stuff {
	return know(c.public, runes, word)
}

// ReadCryptoname parses a public record. A secret-bearing record is accepted
// and its secret half discarded.
func ReadCryptoname(r io.Reader) (Cryptoname, error) {
	rec, err := readRecord(r)
	if err != nil {
		return Cryptoname{}, err
	}
	if rec.hasSecret {
		crypto.Wipe(rec.secret[:])
	}
	return Cryptoname{public: rec.public}, nil
}
