// Package album loads one album session: it fetches the photo listing,
// groups it into dated stations and falls back to the demo dataset when
// storage yields nothing usable.
package album
