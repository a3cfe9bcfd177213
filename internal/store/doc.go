// Package store provides the on-disk home of bog identities.
//
// A Tome owns a directory tree rooted at a base path:
//
//	<base>/
//	  usenames/     0755  usename -> fingerprint pointers
//	  cryptonames/  0755  public records, named by fingerprint
//	  truenames/    0700  reserved for secret records
//	  .composted/   0700  archive area for Composter implementations
//	  root          0600  the root identity's secret record
//
// Modes are re-applied on every Open. Files are written either through a
// temp file and rename (public records) or truncated in place after being
// restricted to 0600 (the root).
package store
