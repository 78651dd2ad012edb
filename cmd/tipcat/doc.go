// Package main hosts the tipcat CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into one of
// four operations: generating the catalogue document, previewing it in the
// terminal, configuration scaffolding, and external-binary health checks.
// It centralizes configuration resolution and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
