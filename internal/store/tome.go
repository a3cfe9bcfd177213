package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"bog/internal/crypto"
	"bog/internal/domain/interfaces"
	"bog/internal/names"
	"bog/internal/util/logging"
)

var (
	// ErrUnresolved is returned when no base directory was supplied.
	ErrUnresolved = errors.New("store: base directory unresolved")

	// ErrOpen is returned when the directory tree cannot be established.
	ErrOpen = errors.New("store: cannot open")

	// ErrReroot is returned when a new root could not be persisted. The root
	// file must then be treated as untrusted.
	ErrReroot = errors.New("store: reroot failed")

	// ErrNoRoot is returned when no root identity has been written yet.
	ErrNoRoot = errors.New("store: no root identity")
)

// Composter archives the current root before Reroot overwrites it.
// rootPath may not exist yet. A non-nil error aborts the reroot before the
// root file is touched.
type Composter interface {
	Compost(rootPath, compostDir string) error
}

// ComposterFunc adapts a function to Composter.
type ComposterFunc func(rootPath, compostDir string) error

func (f ComposterFunc) Compost(rootPath, compostDir string) error { return f(rootPath, compostDir) }

// Option configures a Tome.
type Option func(*Tome)

// WithLogger sets the logger; the default discards.
func WithLogger(l *logging.Logger) Option {
	return func(t *Tome) {
		if l != nil {
			t.log = l
		}
	}
}

// WithComposter installs an archival step run before each Reroot. Without
// one, rerooting overwrites the previous root.
func WithComposter(c Composter) Option {
	return func(t *Tome) { t.composter = c }
}

// Tome owns the on-disk identity tree rooted at a base directory.
//
// Methods are safe for concurrent use within one process. Nothing guards
// against another process rerooting the same tree.
type Tome struct {
	base      string
	log       *logging.Logger
	composter Composter

	mu sync.Mutex
}

// Open establishes the directory tree under base, (re-)applying the mode of
// every directory, and initializes the signature primitive.
//
// Directory creation and chmod failures are tolerated as long as each
// directory ends up existing.
func Open(base string, opts ...Option) (*Tome, error) {
	if strings.TrimSpace(base) == "" {
		return nil, ErrUnresolved
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnresolved, err)
	}

	t := &Tome{base: abs, log: logging.Nop()}
	for _, opt := range opts {
		opt(t)
	}

	if err := os.MkdirAll(abs, publicDirMode); err != nil {
		t.log.Debug("create base failed", "dir", abs, "err", err)
	}
	for _, d := range layout {
		dir := filepath.Join(abs, d.name)
		if err := os.MkdirAll(dir, d.mode); err != nil {
			t.log.Debug("create dir failed", "dir", dir, "err", err)
		}
		if err := os.Chmod(dir, d.mode); err != nil {
			t.log.Warn("set dir mode failed", "dir", dir, "mode", fmt.Sprintf("%04o", d.mode), "err", err)
		}
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOpen, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: %s is not a directory", ErrOpen, dir)
		}
	}

	if err := crypto.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	t.log.Debug("tome opened", "base", abs)
	return t, nil
}

// Reroot generates a fresh root identity and writes it over the root file.
//
// The file is created or truncated and restricted to 0600 before any byte
// is written. On error the root file may be empty or partial.
func (t *Tome) Reroot() (names.Truename, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tn, err := names.GenerateTruename()
	if err != nil {
		return names.Truename{}, fmt.Errorf("%w: %v", ErrReroot, err)
	}
	if t.composter != nil {
		if err := t.composter.Compost(t.RootPath(), t.CompostPath()); err != nil {
			return names.Truename{}, fmt.Errorf("%w: compost: %v", ErrReroot, err)
		}
	}
	if err := writeSecretFile(t.RootPath(), tn); err != nil {
		t.log.Error("root write failed, root file untrusted", "path", t.RootPath(), "err", err)
		return names.Truename{}, fmt.Errorf("%w: %v", ErrReroot, err)
	}
	t.log.Info("rerooted", "fingerprint", tn.Fingerprint())
	return tn, nil
}

// Root loads the current root identity. It waits for an in-flight Reroot.
func (t *Tome) Root() (names.Truename, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	path := t.RootPath()
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return names.Truename{}, ErrNoRoot
	}
	if err != nil {
		return names.Truename{}, err
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Mode().Perm() != rootFileMode {
		t.log.Warn("root file mode is not owner-only", "path", path, "mode", fmt.Sprintf("%04o", info.Mode().Perm()))
	}
	tn, err := names.ReadTruename(f)
	if err != nil {
		return names.Truename{}, fmt.Errorf("read root: %w", err)
	}
	return tn, nil
}

func writeSecretFile(path string, tn names.Truename) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, rootFileMode)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.Chmod(rootFileMode); err != nil {
		return err
	}
	if err := tn.WriteSecret(f); err != nil {
		return err
	}
	return f.Sync()
}

// Compile-time assertion that Tome implements interfaces.Tome.
var _ interfaces.Tome = (*Tome)(nil)
