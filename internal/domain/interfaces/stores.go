package interfaces

import "bog/internal/names"

// RootStore persists the single root identity.
type RootStore interface {
	Reroot() (names.Truename, error)
	Root() (names.Truename, error)
}

// NameStore binds usenames to public identities.
type NameStore interface {
	Enroll(u names.Usename, c names.Cryptoname) error
	Lookup(u names.Usename) (names.Cryptoname, error)
	Usenames() ([]names.Usename, error)
}

// Tome is the full store the identity service runs on.
type Tome interface {
	RootStore
	NameStore
}
