// Package storage lists album photos from the configured backend: a local
// directory served by the host, or a Firebase Storage bucket reached through
// its REST API. Every source returns assets ordered by creation time.
package storage
