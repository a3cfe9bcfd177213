// Package identity manages the root identity and the named public
// identities bog can verify against.
//
// It resolves labels ("root" or an enrolled usename) to names.Oldname
// values and signs only with the root.
package identity
