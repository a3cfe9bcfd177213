package uninit_test

import (
	"errors"
	"strings"
	"testing"

	"bog/internal/crypto"
	"bog/internal/domain"
	"bog/internal/names"
)

func TestPrimitive_RequiresInit(t *testing.T) {
	if _, _, err := crypto.GenerateKeypair(); !errors.Is(err, crypto.ErrNotInitialized) {
		t.Fatalf("GenerateKeypair: want ErrNotInitialized, got %v", err)
	}

	out := make([]byte, crypto.SignatureSize)
	if err := crypto.Sign(out, []byte("msg"), domain.SecretKey{}); !errors.Is(err, crypto.ErrNotInitialized) {
		t.Fatalf("Sign: want ErrNotInitialized, got %v", err)
	}

	sig := make([]byte, crypto.SignatureSize)
	if err := crypto.Verify(sig, []byte("msg"), domain.PublicKey{}); !errors.Is(err, crypto.ErrNotInitialized) {
		t.Fatalf("Verify: want ErrNotInitialized, got %v", err)
	}
}

func TestGenerateTruename_RequiresInit(t *testing.T) {
	if _, err := names.GenerateTruename(); !errors.Is(err, crypto.ErrNotInitialized) {
		t.Fatalf("want ErrNotInitialized, got %v", err)
	}
}

func TestTruenameSign_PanicsOnPrimitiveFailure(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Sign returned instead of panicking")
		}
		if msg, _ := r.(string); !strings.Contains(msg, crypto.ErrNotInitialized.Error()) {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	names.Truename{}.Sign([]byte("hello"))
}

func TestVerify_RejectsWithoutInit(t *testing.T) {
	word, err := names.OldwordFromRunes(make([]byte, crypto.SignatureSize))
	if err != nil {
		t.Fatalf("OldwordFromRunes: %v", err)
	}
	c := names.CryptonameOf(domain.PublicKey{1})
	if got := c.Verify([]byte("hello"), word); got != names.Rejected {
		t.Fatalf("Cryptoname.Verify = %v, want rejected", got)
	}
	if got := names.OldnameOfCrypto(c).Verify([]byte("hello"), word); got != names.Rejected {
		t.Fatalf("Oldname.Verify = %v, want rejected", got)
	}
}
