// Package client talks to a running memorylane host over its HTTP API. The
// CLI uses it for status queries and remote album listings.
package client
