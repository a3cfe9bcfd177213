package identity

import (
	"fmt"
	"io"

	"bog/internal/crypto"
	"bog/internal/domain"
	"bog/internal/domain/interfaces"
	"bog/internal/names"
)

// RootLabel names the root identity wherever a usename is accepted.
const RootLabel = "root"

var (
	// ErrBadUsename is returned for labels outside the usename length bounds.
	ErrBadUsename = fmt.Errorf("usename must be longer than 2 and shorter than %d bytes", crypto.SignatureSize)

	// ErrReservedUsename is returned when enrolling under RootLabel.
	ErrReservedUsename = fmt.Errorf("usename %q is reserved", RootLabel)
)

// Service manages the root identity and named public identities on top of
// a store.
//
// The root identity is the only one this service signs with; every other
// name can only be verified against.
type Service struct {
	store interfaces.Tome
}

// New returns an identity service backed by the given store.
func New(s interfaces.Tome) *Service { return &Service{store: s} }

// Reroot replaces the root identity and returns it with its fingerprint.
func (s *Service) Reroot() (names.Truename, domain.Fingerprint, error) {
	tn, err := s.store.Reroot()
	if err != nil {
		return names.Truename{}, "", err
	}
	return tn, tn.Fingerprint(), nil
}

// Root loads the root identity.
func (s *Service) Root() (names.Truename, error) {
	return s.store.Root()
}

// Fingerprint returns the short handle of the root identity.
func (s *Service) Fingerprint() (domain.Fingerprint, error) {
	tn, err := s.store.Root()
	if err != nil {
		return "", err
	}
	return tn.Fingerprint(), nil
}

// Sign signs payload with the root identity.
func (s *Service) Sign(payload []byte) (names.Oldword, error) {
	tn, err := s.store.Root()
	if err != nil {
		return names.Oldword{}, err
	}
	return tn.Sign(payload), nil
}

// Attest returns the root's self-attestation.
func (s *Service) Attest() (names.Oldword, error) {
	tn, err := s.store.Root()
	if err != nil {
		return names.Oldword{}, err
	}
	return tn.SignSelf(), nil
}

// Resolve maps a label to something verifiable: RootLabel yields the root
// identity, anything else is looked up as an enrolled usename.
func (s *Service) Resolve(label string) (names.Oldname, error) {
	if label == RootLabel {
		tn, err := s.store.Root()
		if err != nil {
			return names.Oldname{}, err
		}
		return names.OldnameOf(tn), nil
	}
	u, ok := names.NewUsename([]byte(label))
	if !ok {
		return names.Oldname{}, ErrBadUsename
	}
	c, err := s.store.Lookup(u)
	if err != nil {
		return names.Oldname{}, err
	}
	return names.OldnameOfCrypto(c), nil
}

// Verify checks word over payload against the identity named by label.
// The error is non-nil only when label cannot be resolved.
func (s *Service) Verify(label string, payload []byte, word names.Oldword) (names.Stuff, error) {
	o, err := s.Resolve(label)
	if err != nil {
		return names.Rejected, err
	}
	return o.Verify(payload, word), nil
}

// Enroll reads a public record from r and binds it to label.
func (s *Service) Enroll(label string, r io.Reader) (names.Cryptoname, error) {
	if label == RootLabel {
		return names.Cryptoname{}, ErrReservedUsename
	}
	u, ok := names.NewUsename([]byte(label))
	if !ok {
		return names.Cryptoname{}, ErrBadUsename
	}
	c, err := names.ReadCryptoname(r)
	if err != nil {
		return names.Cryptoname{}, err
	}
	if err := s.store.Enroll(u, c); err != nil {
		return names.Cryptoname{}, err
	}
	return c, nil
}

// Names lists enrolled usenames.
func (s *Service) Names() ([]names.Usename, error) {
	return s.store.Usenames()
}
