// Package crypto drives the Ed25519 signature primitive used by bog.
//
// Contents
//
//   - One-time, process-wide initialization with a self test (Init)
//   - Key generation, detached signing and verification (GenerateKeypair,
//     Sign, Verify) over the fixed-size types in internal/domain
//   - Short public-key fingerprints for display and file naming (Fingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Every operation except Fingerprint, PublicOf and Wipe fails with
// ErrNotInitialized until Init has succeeded. Verification failures of any
// kind are reported as ErrBadSignature.
package crypto
