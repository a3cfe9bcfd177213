// Package domain holds the fixed-size key types shared by the crypto,
// names and store packages.
package domain
