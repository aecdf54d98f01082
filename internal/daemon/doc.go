// Package daemon runs the long-lived memorylane host.
//
// It wires configuration, the album loader and the HTTP server into a single
// lifecycle with flock-based locking to prevent multiple instances. Every page
// request builds its own album session, so the daemon keeps no album state
// between requests.
//
// Keep orchestration logic here: loading and grouping live in the album and
// memory packages while the daemon focuses on startup, shutdown and routing.
package daemon
