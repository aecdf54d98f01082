// Package services defines shared utilities consumed by the storage adapters,
// the album loader, and the HTTP host.
//
// Key responsibilities:
//   - Context helpers that stamp request and album session identifiers for
//     logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     from external systems (object storage, configuration) so callers can
//     decide between fallback and surfacing an error.
package services
