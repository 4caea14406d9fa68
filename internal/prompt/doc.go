// Package prompt collects the customizer's five answers.
//
// Two sources are supported: LinePrompter reads one line per question from
// an interactive stream (normally stdin), and FilePrompter replays answers
// from a YAML file for non-interactive runs. Both satisfy Prompter, which is
// a scoped resource: callers must Close it on every exit path.
package prompt
