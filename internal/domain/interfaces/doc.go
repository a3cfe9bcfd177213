// Package interfaces declares the store contracts the identity service
// depends on; internal/store provides the file-backed implementation.
package interfaces
