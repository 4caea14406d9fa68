// Package model defines the domain types and value objects for the
// nextjs-cursor-setup CLI.
//
// This package contains pure data structures with no external dependencies.
// Answers is the only domain record: a transient, in-memory set of
// interactive replies that is never persisted as a distinct entity. The
// files the customizer touches (package.json, .env.local, README.md) are
// owned by the project being customized, not by this package.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
