// Package uninit holds tests that exercise the signature primitive and the
// names built on it in a process where crypto.Init was never called.
// Nothing in this package may call crypto.Init.
package uninit
