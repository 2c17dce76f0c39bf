// Package main hosts the charades CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces dataset acquisition, annotation
// inspection, and index statistics on top of the internal packages. It
// centralizes configuration resolution and logger setup so subcommands can
// focus on output formatting.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
