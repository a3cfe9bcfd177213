package store

import (
	"os"
	"path/filepath"
)

const (
	UsenamesDir    = "usenames"
	CryptonamesDir = "cryptonames"
	TruenamesDir   = "truenames"
	CompostDir     = ".composted"
	RootFile       = "root"

	publicDirMode = 0o755
	secretDirMode = 0o700
	rootFileMode  = 0o600
	recordMode    = 0o644
)

// layout lists every directory Open (re-)establishes, with its mode.
var layout = []struct {
	name string
	mode os.FileMode
}{
	{UsenamesDir, publicDirMode},
	{CryptonamesDir, publicDirMode},
	{TruenamesDir, secretDirMode},
	{CompostDir, secretDirMode},
}

// Base returns the directory the tome is rooted at.
func (t *Tome) Base() string { return t.base }

// RootPath returns the path of the root identity file.
func (t *Tome) RootPath() string { return filepath.Join(t.base, RootFile) }

// UsenamesPath returns the directory holding usename pointers.
func (t *Tome) UsenamesPath() string { return filepath.Join(t.base, UsenamesDir) }

// CryptonamesPath returns the directory holding public records.
func (t *Tome) CryptonamesPath() string { return filepath.Join(t.base, CryptonamesDir) }

// TruenamesPath returns the directory reserved for secret records.
func (t *Tome) TruenamesPath() string { return filepath.Join(t.base, TruenamesDir) }

// CompostPath returns the archival directory.
func (t *Tome) CompostPath() string { return filepath.Join(t.base, CompostDir) }
