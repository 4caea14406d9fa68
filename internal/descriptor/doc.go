// Package descriptor handles loading, rewriting, and saving the project's
// package.json descriptor for the nextjs-cursor-setup CLI.
//
// The descriptor is treated as a generic, ordered JSON object: only the four
// fields the customizer owns (name, description, author, repository) are
// touched, and every other key keeps both its value and its position. The
// rewritten file uses two-space indentation.
//
// JSONC (JSON with Comments) input is tolerated via github.com/tidwall/jsonc,
// so a descriptor that picked up a stray comment or trailing comma is still
// loadable. Comments are not preserved on write.
package descriptor
