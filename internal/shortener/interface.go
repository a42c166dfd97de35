package shortener

import (
	"context"
	"net/url"

	"shortener/pkg/domain"
	"shortener/pkg/storage"
)

// VisitContext carries what the redirect path observed about the client. All
// fields are optional.
type VisitContext struct {
	// RemoteAddr is the client address.
	RemoteAddr string
	// UserAgent is the client user agent, used for bot classification.
	UserAgent string
	// Referer is the Referer header.
	Referer string
	// Query holds the query params of the visited short URL, merged into the
	// long URL when the short URL forwards queries.
	Query url.Values
}

// Shortener is the application service around the short-URL aggregate. It
// owns transaction boundaries, short-code collision retries and visit
// recording; all entity rules live in the domain package.
//
//go:generate mockgen -package mockshortener -source=interface.go -destination=mock/mockshortener.go *
type Shortener interface {
	// Create builds and persists a new short URL. Generated codes that
	// collide with existing ones are regenerated and retried; custom slugs
	// that collide surface a conflict.
	Create(ctx context.Context, input domain.ShortURLCreation) (*domain.ShortURL, error)
	// Import persists an externally-sourced short URL record. When
	// importShortCode is set the original code is kept unless it collides, in
	// which case a fresh one is generated.
	Import(ctx context.Context, imported domain.ImportedShortURL, importShortCode bool) (*domain.ShortURL, error)
	// ShortURL fetches a single short URL with relations and visits.
	ShortURL(ctx context.Context, ident storage.ShortURLIdentifier) (*domain.ShortURL, error)
	// ShortURLs returns a page of short URLs, newest first, with an RFC3339
	// next cursor when more results are available.
	ShortURLs(ctx context.Context, cursor string, limit uint) ([]*domain.ShortURL, string, error)
	// Edit applies a partial update and persists the result.
	Edit(ctx context.Context, ident storage.ShortURLIdentifier, edit domain.ShortURLEdit) (*domain.ShortURL, error)
	// Delete removes a short URL and its visits.
	Delete(ctx context.Context, ident storage.ShortURLIdentifier) error
	// Redirect resolves a short URL for visiting: it checks enablement,
	// records a visit and returns the target long URL with query forwarding
	// applied.
	Redirect(ctx context.Context, ident storage.ShortURLIdentifier, visit VisitContext) (string, error)
	// AuthenticateAPIKey resolves an API key secret to an enabled key.
	AuthenticateAPIKey(ctx context.Context, key string) (*domain.APIKey, error)
}
