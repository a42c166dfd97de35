package storage

import (
	"context"

	"shortener/pkg/domain"
)

// RelationStorage defines canonicalization operations for tags and domains.
// "Ensure" semantics: return the existing entity when one with the same
// normalized name exists, create it otherwise.
type RelationStorage interface {
	// EnsureTags resolves raw tag names to persisted tags, creating missing
	// ones. The result is deduplicated by normalized name.
	EnsureTags(ctx context.Context, names []string) ([]domain.Tag, error)
	// EnsureDomain resolves an authority to a persisted domain, creating it
	// when missing. An empty authority yields nil.
	EnsureDomain(ctx context.Context, authority string) (*domain.Domain, error)
}

// APIKeyStorage defines persistence operations for API keys.
type APIKeyStorage interface {
	// StoreAPIKey inserts a new API key and returns the stored row.
	StoreAPIKey(ctx context.Context, k domain.APIKey) (*domain.APIKey, error)
	// APIKeyByKey fetches an API key by its secret. Returns nil when not found.
	APIKeyByKey(ctx context.Context, key string) (*domain.APIKey, error)
}

// PersistentRelationResolver is a domain.RelationResolver that deduplicates
// against the backing store: tags and domains resolve to their persisted
// canonical entities, created on first use. It is the strategy injected on
// the service's creation and update paths; the structural
// SimpleRelationResolver remains the default elsewhere.
type PersistentRelationResolver struct {
	storage RelationStorage
}

var _ domain.RelationResolver = (*PersistentRelationResolver)(nil)

// NewPersistentRelationResolver builds a resolver backed by the given storage
// handle. The handle may be transactional so resolution participates in the
// surrounding transaction.
func NewPersistentRelationResolver(storage RelationStorage) *PersistentRelationResolver {
	return &PersistentRelationResolver{storage: storage}
}

// ResolveTags resolves raw names to persisted canonical tags.
func (r *PersistentRelationResolver) ResolveTags(ctx context.Context, names []string) ([]domain.Tag, error) {
	return r.storage.EnsureTags(ctx, names) //nolint: wrapcheck
}

// ResolveDomain resolves an authority to a persisted canonical domain.
func (r *PersistentRelationResolver) ResolveDomain(ctx context.Context, authority string) (*domain.Domain, error) {
	return r.storage.EnsureDomain(ctx, authority) //nolint: wrapcheck
}
