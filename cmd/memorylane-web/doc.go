//go:build js && wasm

// Command memorylane-web is the browser side of the album page, built with
// GOOS=js GOARCH=wasm and served from paths.static_dir as memorylane.wasm.
//
// It reads the album payload embedded in the page (or fetches /api/album
// when the page carries none), then drives the journey state machines with
// DOM adapters: requestAnimationFrame for frame pacing, an
// IntersectionObserver for unlocking stations, and the gallery modal.
package main
