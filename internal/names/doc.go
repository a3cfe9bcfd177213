// Package names implements the identity data model: human labels
// (Usename), public-only identities (Cryptoname), signing identities
// (Truename), the verifying union over both (Oldname), detached signatures
// (Oldword) and their line-oriented text records.
//
// Signing and verification go through internal/crypto, which must be
// initialized first; store.Open does that.
package names
