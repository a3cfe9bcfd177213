package names

import "bog/internal/domain"

// OldnameKind tags the variant held by an Oldname.
type OldnameKind uint8

const (
	OldTrue OldnameKind = iota + 1
	OldCrypto
)

// Oldname is something with a public key to verify against: either a
// Truename or a Cryptoname. It deliberately offers no way to sign.
type Oldname struct {
	kind       OldnameKind
	truename   Truename
	cryptoname Cryptoname
}

// OldnameOf wraps a Truename.
func OldnameOf(t Truename) Oldname { return Oldname{kind: OldTrue, truename: t} }

// OldnameOfCrypto wraps a Cryptoname.
func OldnameOfCrypto(c Cryptoname) Oldname { return Oldname{kind: OldCrypto, cryptoname: c} }

// Kind returns the wrapped variant; zero for an empty Oldname.
func (o Oldname) Kind() OldnameKind { return o.kind }

func (o Oldname) public() (domain.PublicKey, bool) {
	switch o.kind {
	case OldTrue:
		return o.truename.public, true
	case OldCrypto:
		return o.cryptoname.public, true
	default:
		return domain.PublicKey{}, false
	}
}

// Cryptoname returns the public projection of the wrapped identity.
func (o Oldname) Cryptoname() Cryptoname {
	pub, _ := o.public()
	return Cryptoname{public: pub}
}

// VerifySelf checks a self-attestation against the wrapped identity.
func (o Oldname) VerifySelf(word Oldword) Stuff {
	pub, ok := o.public()
	if !ok {
		return Rejected
	}
	return know(pub, pub[:], word)
}

// Verify checks word as a signature over runes.
func (o Oldname) Verify(runes []byte, word Oldword) Stuff {
	pub, ok := o.public()
	if !ok {
		return Rejected
	}
	return know(pub, runes, word)
}
