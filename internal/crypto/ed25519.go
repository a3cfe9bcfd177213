package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/crypto/ed25519"

	"bog/internal/domain"
)

const (
	PublicKeySize = ed25519.PublicKeySize
	SecretKeySize = ed25519.PrivateKeySize
	SignatureSize = ed25519.SignatureSize
)

var (
	// ErrNotInitialized is returned when the primitive is used before Init.
	ErrNotInitialized = errors.New("signature primitive not initialized")

	// ErrBadSignature covers every verification failure, malformed input included.
	ErrBadSignature = errors.New("bad signature")

	initOnce sync.Once
	initErr  error
	ready    atomic.Bool
)

// Init prepares the signature primitive for use by this process. It runs a
// pairwise-consistency self test the first time and returns the cached
// result on every later call.
//
// Concurrent first calls are serialized by the guard, but callers should
// still call Init once before starting workers that sign or verify.
func Init() error {
	initOnce.Do(func() {
		initErr = selfTest()
		if initErr == nil {
			ready.Store(true)
		}
	})
	return initErr
}

func selfTest() error {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("self test: generate: %w", err)
	}
	msg := []byte("bog self test")
	sig := ed25519.Sign(sk, msg)
	if !ed25519.Verify(pk, msg, sig) {
		return errors.New("self test: signature rejected")
	}
	sig[0] ^= 0x01
	if ed25519.Verify(pk, msg, sig) {
		return errors.New("self test: tampered signature accepted")
	}
	return nil
}

// GenerateKeypair returns a new Ed25519 signing key pair.
func GenerateKeypair() (pub domain.PublicKey, sec domain.SecretKey, err error) {
	if !ready.Load() {
		return pub, sec, ErrNotInitialized
	}
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return pub, sec, err
	}
	copy(pub[:], pk)
	copy(sec[:], sk)
	Wipe(sk)
	return pub, sec, nil
}

// Sign writes the detached signature of msg into out, which must be exactly
// SignatureSize bytes long.
func Sign(out, msg []byte, sec domain.SecretKey) error {
	if !ready.Load() {
		return ErrNotInitialized
	}
	if len(out) != SignatureSize {
		return fmt.Errorf("signature buffer: want %d bytes, got %d", SignatureSize, len(out))
	}
	sig := ed25519.Sign(ed25519.PrivateKey(sec.Slice()), msg)
	copy(out, sig)
	return nil
}

// Verify checks sig over msg with pub.
func Verify(sig, msg []byte, pub domain.PublicKey) error {
	if !ready.Load() {
		return ErrNotInitialized
	}
	if len(sig) != SignatureSize {
		return ErrBadSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(pub.Slice()), msg, sig) {
		return ErrBadSignature
	}
	return nil
}

// PublicOf returns the public half embedded in sec.
func PublicOf(sec domain.SecretKey) domain.PublicKey {
	var pub domain.PublicKey
	pk := ed25519.PrivateKey(sec[:]).Public().(ed25519.PublicKey)
	copy(pub[:], pk)
	return pub
}

// Matches reports whether pub is the public half of sec.
func Matches(pub domain.PublicKey, sec domain.SecretKey) bool {
	derived := PublicOf(sec)
	return bytes.Equal(derived[:], pub[:])
}
