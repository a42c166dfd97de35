package domain

import (
	"encoding/json"
	"time"
)

// Field is an optional edit field: it distinguishes "not supplied" from
// "supplied with this value" (including a nil value, which some fields treat
// as an explicit clear). The zero Field is absent.
//
// When decoded from JSON, a Field becomes present iff its key appears in the
// payload, which is exactly the provided-flag semantics partial updates need.
type Field[T any] struct {
	value   T
	present bool
}

// NewField returns a present Field holding v.
func NewField[T any](v T) Field[T] {
	return Field[T]{value: v, present: true}
}

// Present reports whether the field was supplied.
func (f Field[T]) Present() bool { return f.present }

// Get returns the value and whether it was supplied.
func (f Field[T]) Get() (T, bool) { return f.value, f.present }

// Value returns the supplied value, or the zero value when absent.
func (f Field[T]) Value() T { return f.value }

// UnmarshalJSON marks the field present and decodes the value. It is only
// invoked when the key exists in the payload, so absent keys leave the field
// absent.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.present = true

	return json.Unmarshal(b, &f.value) //nolint: wrapcheck
}

// MarshalJSON encodes the held value. Absent fields encode as null; callers
// that need to elide them should check Present first.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.value) //nolint: wrapcheck
}

// ShortURLCreation carries the raw inputs for building a new short URL.
// Optional values are pointers; nil means not supplied.
type ShortURLCreation struct {
	// LongURL is the redirect target. Required.
	LongURL string
	// Domain is the authority the short code is scoped to; empty means the
	// default domain.
	Domain string
	// Tags are raw tag names, resolved and deduplicated during creation.
	Tags []string

	// Title is an optional human-readable title.
	Title *string
	// TitleWasAutoResolved records whether Title was guessed by the system
	// rather than chosen by the caller.
	TitleWasAutoResolved bool

	// ValidSince and ValidUntil optionally bound the active window.
	ValidSince *time.Time
	ValidUntil *time.Time
	// MaxVisits optionally caps the number of visits before the URL is
	// treated as disabled.
	MaxVisits *int

	// CustomSlug is a caller-chosen short code. When set, no code is
	// generated and the code can never be regenerated (unless the short URL
	// originates from an import).
	CustomSlug *string
	// ShortCodeLength fixes the generated code's length. Zero means
	// DefaultShortCodeLength.
	ShortCodeLength int

	// Crawlable controls whether the short URL is advertised to crawlers.
	Crawlable bool
	// ForwardQuery controls whether query params on the short URL are merged
	// into the long URL on redirect. Nil means the default (true).
	ForwardQuery *bool

	// AuthorAPIKey optionally credits the API key that created the URL.
	AuthorAPIKey *APIKey
	// ValidateURL asks the service to verify the long URL resolves before
	// the short URL is created. The aggregate records it verbatim; it never
	// performs I/O itself.
	ValidateURL bool
}

// ShortURLEdit describes a partial update. Every editable attribute is a
// Field so absent keys leave the attribute untouched.
type ShortURLEdit struct {
	// LongURL replaces the redirect target when supplied with a non-nil
	// value. A supplied nil is a no-op, not a clear.
	LongURL Field[*string] `json:"longUrl"`

	// ValidSince, ValidUntil and MaxVisits are overwritten whenever supplied;
	// a supplied nil clears them.
	ValidSince Field[*time.Time] `json:"validSince"`
	ValidUntil Field[*time.Time] `json:"validUntil"`
	MaxVisits  Field[*int]       `json:"maxVisits"`

	// Tags, when supplied, are re-resolved and replace the tag set wholesale.
	Tags Field[[]string] `json:"tags"`

	// Title replaces the current title subject to the auto-resolution
	// precedence rules; see ShortURL.Update.
	Title Field[*string] `json:"title"`
	// TitleWasAutoResolved marks the edit's title as a system guess. A guess
	// may freely replace an earlier guess but never a caller-chosen title.
	TitleWasAutoResolved bool `json:"-"`

	Crawlable    Field[bool] `json:"crawlable"`
	ForwardQuery Field[bool] `json:"forwardQuery"`
}

// ImportedShortURL is an externally-sourced short URL record consumed at
// import time. Its data is trusted: validation is skipped and its temporal
// fields override what normal creation would set.
type ImportedShortURL struct {
	// LongURL is the redirect target from the source system.
	LongURL string `json:"longUrl"`
	// Domain is the authority the code was scoped to in the source system.
	Domain string `json:"domain,omitempty"`
	// Tags are raw tag names from the source system.
	Tags []string `json:"tags,omitempty"`
	// Title is the title from the source system, if any.
	Title *string `json:"title,omitempty"`
	// ShortCode is the code the URL had in the source system.
	ShortCode string `json:"shortCode"`
	// Source names the system the record was imported from.
	Source string `json:"source"`
	// CreatedAt is the original creation time in the source system.
	CreatedAt time.Time `json:"createdAt"`

	// Meta carries the optional validity window and visit quota.
	Meta ImportedShortURLMeta `json:"meta"`
}

// ImportedShortURLMeta is the optional metadata attached to an imported
// short URL.
type ImportedShortURLMeta struct {
	ValidSince *time.Time `json:"validSince,omitempty"`
	ValidUntil *time.Time `json:"validUntil,omitempty"`
	MaxVisits  *int       `json:"maxVisits,omitempty"`
}
