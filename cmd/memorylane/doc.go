// Package main hosts the memorylane CLI entrypoint and command graph.
//
// The Cobra command tree runs the album host (serve), inspects the station
// list a load would produce (stations), queries a running host (status),
// runs preflight checks (check), tails the host log (logs), and scaffolds
// configuration. Configuration resolution and logger setup live here so the
// subcommands stay thin wrappers over the internal packages.
package main
