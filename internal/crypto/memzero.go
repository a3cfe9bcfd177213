package crypto

import "runtime"

// Wipe zeroes the provided buffer. This is best-effort: copies made
// elsewhere are not reached.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(&b)
}
