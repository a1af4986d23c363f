// Package cli is the interactive terminal front-end of realverse.
//
// It reads one command per line, prompts for multi-field input where a
// command needs it, and renders collections as plain text. All state lives
// behind app.App; the shell only formats and forwards.
package cli
