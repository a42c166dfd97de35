// Package domain contains the core domain entities and rules of the URL
// shortener: the short-URL aggregate and its lifecycle, short-code
// generation, tag and domain relation resolution, and visit classification.
// These types represent the business concepts and are intentionally free of
// infrastructure concerns so they can be shared across packages; persistence
// and transport live elsewhere.
package domain
