// Package main hosts the reelcat CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// catalog reads and mutations: listing the flattened view, adding and
// editing videos, moving them between authors, deleting them, and
// configuration scaffolding. It centralizes configuration resolution,
// store construction, and logger setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags
// here.
package main
