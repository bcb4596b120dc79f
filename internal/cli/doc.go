// Package cli defines the Cobra command tree for the kitty-bridge CLI.
// Each file in this package registers one top-level command (sync, verify,
// rules, etc.) with the root command. Command implementations delegate to
// internal packages for business logic and only handle flag parsing, I/O
// formatting, and exit semantics.
package cli
