package domain

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// TagID uniquely identifies a tag.
type TagID uuid.UUID

// Tag is a label attached to short URLs. Tags are canonical entities: two
// tags with the same normalized name are the same tag.
type Tag struct {
	// ID is the unique identifier of the tag. It is zero for tags that have
	// not been persisted yet (e.g. produced by SimpleRelationResolver).
	ID TagID `json:"id"`
	// Name is the normalized tag name.
	Name string `json:"name"`
}

// DomainID uniquely identifies a domain.
type DomainID uuid.UUID

// Domain is a host under which short codes are scoped. A nil Domain on a
// short URL means the default (apex) domain.
type Domain struct {
	// ID is the unique identifier of the domain. It is zero for domains that
	// have not been persisted yet.
	ID DomainID `json:"id"`
	// Authority is the host name, e.g. "s.example.com".
	Authority string `json:"authority"`
}

// NormalizeTagName returns the canonical form of a raw tag name. Tag
// deduplication is always performed on the normalized form.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// RelationResolver turns raw tag names and a raw domain authority into
// canonical entities. Implementations decide whether resolution consults
// existing storage (deduplicating against persisted entities) or is purely
// structural; the aggregate stays agnostic to the injected strategy.
//
//go:generate mockgen -package mockdomain -source=relations.go -destination=mock/mockrelations.go *
type RelationResolver interface {
	// ResolveTags maps raw tag names to canonical tags. The result is
	// deduplicated by normalized name and carries no duplicates; order of the
	// input is preserved for first occurrences. Empty names are dropped.
	ResolveTags(ctx context.Context, names []string) ([]Tag, error)
	// ResolveDomain maps a raw authority to a canonical domain. An empty
	// authority resolves to nil, meaning the default domain.
	ResolveDomain(ctx context.Context, authority string) (*Domain, error)
}

// SimpleRelationResolver resolves relations without any external lookups: it
// wraps the raw names into fresh unpersisted entities. It is the default
// strategy used when no storage-backed resolver is injected.
type SimpleRelationResolver struct{}

var _ RelationResolver = SimpleRelationResolver{}

// ResolveTags normalizes and deduplicates the given names, wrapping each into
// a fresh Tag value.
func (SimpleRelationResolver) ResolveTags(_ context.Context, names []string) ([]Tag, error) {
	normalized := lo.FilterMap(names, func(name string, _ int) (string, bool) {
		n := NormalizeTagName(name)

		return n, n != ""
	})

	return lo.Map(lo.Uniq(normalized), func(name string, _ int) Tag {
		return Tag{Name: name}
	}), nil
}

// ResolveDomain wraps a non-empty authority into a fresh Domain value.
func (SimpleRelationResolver) ResolveDomain(_ context.Context, authority string) (*Domain, error) {
	if authority == "" {
		return nil, nil
	}

	return &Domain{Authority: authority}, nil
}
