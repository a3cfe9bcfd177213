package fsperm

import (
	"os"
	"runtime"
	"testing"
)

// AssertDirPerm verifies that dir exists as a directory with exactly perm.
func AssertDirPerm(t testing.TB, dir string, perm os.FileMode) {
	t.Helper()

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat dir failed: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected directory, got file: %s", dir)
	}
	assertPerm(t, dir, info.Mode().Perm(), perm)
}

// AssertFilePerm verifies that path exists as a regular file with exactly perm.
func AssertFilePerm(t testing.TB, path string, perm os.FileMode) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat file failed: %v", err)
	}
	if !info.Mode().IsRegular() {
		t.Fatalf("expected regular file: %s", path)
	}
	assertPerm(t, path, info.Mode().Perm(), perm)
}

func assertPerm(t testing.TB, path string, got, want os.FileMode) {
	t.Helper()
	if runtime.GOOS == "windows" {
		return
	}
	if got != want {
		t.Fatalf("expected perm %04o, got %04o for %s", want, got, path)
	}
}
