package crypto

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"bog/internal/domain"
)

// Fingerprint returns a short printable handle for a public key.
//
// It hashes with BLAKE2b-256 and base58-encodes the first 20 bytes.
func Fingerprint(pub domain.PublicKey) domain.Fingerprint {
	sum := blake2b.Sum256(pub[:])
	return domain.Fingerprint(base58.Encode(sum[:20]))
}
