// Package preflight runs readiness checks before the host starts and for the
// `memorylane check` command: directory permissions, the customization table,
// the storage listing and the API bind address.
package preflight
