package store_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bog/internal/names"
	"bog/internal/store"
	"bog/internal/testutil/fsperm"
)

func openTome(t *testing.T, opts ...store.Option) *store.Tome {
	t.Helper()
	tome, err := store.Open(filepath.Join(t.TempDir(), "bog"), opts...)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return tome
}

func assertLayout(t *testing.T, base string) {
	t.Helper()
	fsperm.AssertDirPerm(t, filepath.Join(base, store.UsenamesDir), 0o755)
	fsperm.AssertDirPerm(t, filepath.Join(base, store.CryptonamesDir), 0o755)
	fsperm.AssertDirPerm(t, filepath.Join(base, store.TruenamesDir), 0o700)
	fsperm.AssertDirPerm(t, filepath.Join(base, store.CompostDir), 0o700)
}

func TestOpen_FreshLayout(t *testing.T) {
	tome := openTome(t)
	assertLayout(t, tome.Base())
	if _, err := os.Stat(tome.RootPath()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("open must not create a root file, stat err=%v", err)
	}
}

func TestOpen_RepairsModes(t *testing.T) {
	tome := openTome(t)
	if err := os.Chmod(tome.TruenamesPath(), 0o777); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	if err := os.Chmod(tome.UsenamesPath(), 0o700); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	if _, err := store.Open(tome.Base()); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	assertLayout(t, tome.Base())
}

func TestOpen_Unresolved(t *testing.T) {
	for _, base := range []string{"", "   "} {
		if _, err := store.Open(base); !errors.Is(err, store.ErrUnresolved) {
			t.Fatalf("base %q: want ErrUnresolved, got %v", base, err)
		}
	}
}

func TestOpen_BlockedByFile(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, store.CryptonamesDir), []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.Open(base); !errors.Is(err, store.ErrOpen) {
		t.Fatalf("want ErrOpen, got %v", err)
	}
}

func TestReroot_WritesOwnerOnlyRoot(t *testing.T) {
	tome := openTome(t)
	tn, err := tome.Reroot()
	if err != nil {
		t.Fatalf("reroot: %v", err)
	}
	fsperm.AssertFilePerm(t, tome.RootPath(), 0o600)

	f, err := os.Open(tome.RootPath())
	if err != nil {
		t.Fatalf("open root: %v", err)
	}
	defer f.Close()
	loaded, err := names.ReadTruename(f)
	if err != nil {
		t.Fatalf("parse root: %v", err)
	}
	if loaded.PublicKey() != tn.PublicKey() {
		t.Fatal("root file holds a different key")
	}

	payload := []byte("agree")
	fromFile := names.CryptonameOf(loaded.PublicKey())
	if got := fromFile.Verify(payload, tn.Sign(payload)); got != names.Affirmed {
		t.Fatalf("returned truename vs file cryptoname: %v", got)
	}
}

func TestReroot_TightensLooseRoot(t *testing.T) {
	tome := openTome(t)
	if err := os.WriteFile(tome.RootPath(), []byte("stale"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Chmod(tome.RootPath(), 0o644); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	if _, err := tome.Reroot(); err != nil {
		t.Fatalf("reroot: %v", err)
	}
	fsperm.AssertFilePerm(t, tome.RootPath(), 0o600)
}

func TestReroot_Replaces(t *testing.T) {
	tome := openTome(t)
	first, err := tome.Reroot()
	if err != nil {
		t.Fatalf("reroot 1: %v", err)
	}
	second, err := tome.Reroot()
	if err != nil {
		t.Fatalf("reroot 2: %v", err)
	}
	if first.PublicKey() == second.PublicKey() {
		t.Fatal("reroot reused the previous key")
	}
	root, err := tome.Root()
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if root.PublicKey() != second.PublicKey() {
		t.Fatal("root file does not hold the latest identity")
	}
}

func TestHelloScenario(t *testing.T) {
	tome := openTome(t)
	tn, err := tome.Reroot()
	if err != nil {
		t.Fatalf("reroot: %v", err)
	}
	if got := tn.Cryptoname().Verify([]byte("hello"), tn.Sign([]byte("hello"))); got != names.Affirmed {
		t.Fatalf("hello: %v", got)
	}
	if got := tn.Cryptoname().Verify([]byte("hello!"), tn.Sign([]byte("hello"))); got != names.Rejected {
		t.Fatalf("hello!: %v", got)
	}
}

func TestRoot_Missing(t *testing.T) {
	tome := openTome(t)
	if _, err := tome.Root(); !errors.Is(err, store.ErrNoRoot) {
		t.Fatalf("want ErrNoRoot, got %v", err)
	}
}

func TestReroot_ComposterRunsFirst(t *testing.T) {
	var calls int
	var sawRoot []byte
	c := store.ComposterFunc(func(rootPath, compostDir string) error {
		calls++
		sawRoot, _ = os.ReadFile(rootPath)
		return nil
	})
	tome := openTome(t, store.WithComposter(c))

	first, err := tome.Reroot()
	if err != nil {
		t.Fatalf("reroot 1: %v", err)
	}
	if sawRoot != nil {
		t.Fatal("composter saw a root before one existed")
	}
	before, err := os.ReadFile(tome.RootPath())
	if err != nil {
		t.Fatalf("read root: %v", err)
	}
	if _, err := tome.Reroot(); err != nil {
		t.Fatalf("reroot 2: %v", err)
	}
	if calls != 2 {
		t.Fatalf("want 2 composter calls, got %d", calls)
	}
	if string(sawRoot) != string(before) {
		t.Fatal("composter did not see the previous root")
	}
	prev, err := names.ReadTruename(bytes.NewReader(sawRoot))
	if err != nil {
		t.Fatalf("parse composted root: %v", err)
	}
	if prev.PublicKey() != first.PublicKey() {
		t.Fatal("composter saw a root other than the first one")
	}
}

func TestReroot_ComposterFailureKeepsRoot(t *testing.T) {
	fail := false
	c := store.ComposterFunc(func(string, string) error {
		if fail {
			return errors.New("archive full")
		}
		return nil
	})
	tome := openTome(t, store.WithComposter(c))
	kept, err := tome.Reroot()
	if err != nil {
		t.Fatalf("reroot: %v", err)
	}

	fail = true
	if _, err := tome.Reroot(); !errors.Is(err, store.ErrReroot) {
		t.Fatalf("want ErrReroot, got %v", err)
	}
	root, err := tome.Root()
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if root.PublicKey() != kept.PublicKey() {
		t.Fatal("failed reroot replaced the root")
	}
}

func TestReroot_UnwritableRoot(t *testing.T) {
	tome := openTome(t)
	if err := os.Mkdir(tome.RootPath(), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := tome.Reroot(); !errors.Is(err, store.ErrReroot) {
		t.Fatalf("want ErrReroot, got %v", err)
	}
}

func TestRoot_DuringReroot(t *testing.T) {
	tome := openTome(t)
	if _, err := tome.Reroot(); err != nil {
		t.Fatalf("reroot: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		for i := 0; i < 50; i++ {
			if _, err := tome.Reroot(); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	for {
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("reroot: %v", err)
			}
			return
		default:
		}
		if _, err := tome.Root(); err != nil {
			t.Fatalf("root while rerooting: %v", err)
		}
	}
}
