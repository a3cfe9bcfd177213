// Package commands defines the bog CLI and wires dependencies for subcommands.
//
// Commands
//
//   - reroot        Replace the root identity
//   - fingerprint   Print the root fingerprint
//   - show          Print the public record of the root or a usename
//   - attest        Print the root's self-attestation
//   - sign          Sign a file (or stdin) with the root
//   - verify        Verify a signature against the root or a usename
//   - enroll        Bind a public record to a usename
//   - names         List enrolled usenames
//
// # Implementation
//
// The root command resolves the home directory (--home, $BOG_HOME, ~/.bog)
// and opens the store before any subcommand runs, so handlers share one
// wired app context.
package commands
