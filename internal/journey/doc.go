// Package journey holds the interactive state machines of the album timeline:
// the scroll engine that drives the train and parallax layers, the unlock
// machine that reveals stations as they become visible, and the gallery
// navigator. Every browser signal arrives through a small interface so the
// machines can be exercised with synthetic event sequences.
//
// None of the types here are safe for concurrent use; they are driven from a
// single event loop.
package journey
