package storage

import (
	"context"
	"time"

	"shortener/pkg/domain"
)

// ShortURLIdentifier addresses a short URL by its code and the authority it
// is scoped to. An empty Domain means the default domain.
type ShortURLIdentifier struct {
	ShortCode string
	Domain    string
}

// ShortURLsPage groups a page of short URLs together with an optional
// NextCursor used for pagination.
type ShortURLsPage struct {
	// ShortURLs contains the current page, newest first.
	ShortURLs []*domain.ShortURL
	// NextCursor points to the dateCreated to be used as the cursor for
	// fetching the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// ShortURLStorage defines persistence operations for the short-URL aggregate.
// Implementations are responsible for mapping the aggregate (via its
// snapshot) to rows, including the tag set and domain reference, and for
// enforcing short-code uniqueness per domain scope at insert time.
type ShortURLStorage interface {
	// StoreShortURL inserts a new short URL together with its tag and domain
	// relations and returns the stored aggregate, persisted identity and
	// canonical relations included. It returns ErrShortCodeInUse when the
	// (domain, code) pair already exists, so callers can regenerate and retry.
	StoreShortURL(ctx context.Context, s *domain.ShortURL) (*domain.ShortURL, error)
	// UpdateShortURL persists the mutable attributes of an already-persisted
	// aggregate and replaces its tag relations wholesale.
	UpdateShortURL(ctx context.Context, s *domain.ShortURL) error
	// ShortURLByIdentifier loads a short URL with its tags, domain and visit
	// ledger. Returns nil when not found.
	ShortURLByIdentifier(ctx context.Context, ident ShortURLIdentifier) (*domain.ShortURL, error)
	// ShortURLByIdentifierForUpdate behaves like ShortURLByIdentifier but
	// locks the row until the surrounding transaction ends, so a
	// load-modify-write cycle cannot race another writer. Only meaningful
	// inside a transaction.
	ShortURLByIdentifierForUpdate(ctx context.Context, ident ShortURLIdentifier) (*domain.ShortURL, error)
	// ShortURLByID loads a short URL by its identity, with relations and
	// visits. Returns nil when not found.
	ShortURLByID(ctx context.Context, id domain.ShortURLID) (*domain.ShortURL, error)
	// ShortURLByIDForUpdate behaves like ShortURLByID but locks the row until
	// the surrounding transaction ends. Only meaningful inside a transaction.
	ShortURLByIDForUpdate(ctx context.Context, id domain.ShortURLID) (*domain.ShortURL, error)
	// DeleteShortURL removes a short URL and its visit ledger. It reports
	// whether a row was actually deleted.
	DeleteShortURL(ctx context.Context, ident ShortURLIdentifier) (bool, error)
	// ShortURLs returns a page of short URLs created before the optional
	// cursor time, newest first, limited by limit.
	ShortURLs(ctx context.Context, cursor time.Time, limit uint) (ShortURLsPage, error)
}

// VisitStorage defines persistence operations for the visit ledger. Visits
// are append-only; the aggregate never mutates them.
type VisitStorage interface {
	// StoreVisit appends a visit and returns the stored row including its
	// generated identity and insertion order key.
	StoreVisit(ctx context.Context, v domain.Visit) (*domain.Visit, error)
	// VisitsByShortURL returns the full visit ledger of a short URL in
	// insertion order.
	VisitsByShortURL(ctx context.Context, id domain.ShortURLID) ([]domain.Visit, error)
}
