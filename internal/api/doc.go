// Package api defines wire-format types and converters for the HTTP API and
// the album page. It translates album sessions into transport-friendly DTOs
// that the browser frontend and the CLI render without coupling to internal
// types.
//
// # Key Types
//
// StationCard: one timeline entry with its emblem, cover, dates, photo label
// and images.
//
// AlbumResponse: a loaded session with its origin, fallback reason and the
// names of photos that carried no date.
//
// StatusResponse: host running state, storage backend and lock file.
//
// # Design Notes
//
// DTOs use camelCase JSON tags for JavaScript consumers. Timestamps use
// RFC3339 with milliseconds. Stations without photos get a placeholder cover
// so every card renders an image.
package api
