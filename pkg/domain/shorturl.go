package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ShortURLID uniquely identifies a persisted short URL.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ShortURLID uuid.UUID

// IsZero reports whether the ID is unset, i.e. the short URL has not been
// persisted yet.
func (id ShortURLID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// ShortURL is the short-URL aggregate: the entity plus the invariants that
// must hold across its lifecycle. Fields are unexported so every mutation
// goes through a method that can enforce them:
//
//   - the short code is frozen once the aggregate has a persisted identity;
//   - the generated code length never changes after creation;
//   - the tag set never holds two entries with the same normalized name;
//   - dateCreated is set exactly once, at construction (or taken verbatim
//     from import data).
//
// A ShortURL is a plain mutable object with no internal locking; concurrent
// edits must be serialized by the surrounding transaction boundary.
type ShortURL struct {
	id ShortURLID

	longURL         string
	shortCode       string
	shortCodeLength int
	dateCreated     time.Time

	tags   []Tag
	domain *Domain

	validSince *time.Time
	validUntil *time.Time
	maxVisits  *int

	customSlugWasProvided   bool
	importSource            string
	importOriginalShortCode string

	authorAPIKey *APIKey

	title                *string
	titleWasAutoResolved bool

	crawlable    bool
	forwardQuery bool

	// visits is owned by the persistence layer; the aggregate only reads it.
	visits []Visit
}

// NewShortURL builds a short URL from a creation request. Tags and domain are
// materialized through the resolver (SimpleRelationResolver when nil) and a
// short code is generated unless a custom slug was supplied. It performs no
// I/O beyond what the injected resolver does; resolver failures propagate
// unmodified.
func NewShortURL(ctx context.Context,
	input ShortURLCreation,
	resolver RelationResolver,
	generator ShortCodeGenerator) (*ShortURL, error) {
	if resolver == nil {
		resolver = SimpleRelationResolver{}
	}
	if generator == nil {
		generator = NanoIDGenerator{}
	}

	tags, err := resolver.ResolveTags(ctx, input.Tags)
	if err != nil {
		return nil, err
	}
	dom, err := resolver.ResolveDomain(ctx, input.Domain)
	if err != nil {
		return nil, err
	}

	length := input.ShortCodeLength
	if length <= 0 {
		length = DefaultShortCodeLength
	}

	s := &ShortURL{
		longURL:         input.LongURL,
		shortCodeLength: length,
		dateCreated:     time.Now(),

		tags:   tags,
		domain: dom,

		validSince: input.ValidSince,
		validUntil: input.ValidUntil,
		maxVisits:  input.MaxVisits,

		customSlugWasProvided: input.CustomSlug != nil,

		authorAPIKey: input.AuthorAPIKey,

		title:                input.Title,
		titleWasAutoResolved: input.TitleWasAutoResolved,

		crawlable:    input.Crawlable,
		forwardQuery: input.ForwardQuery == nil || *input.ForwardQuery,
	}

	if input.CustomSlug != nil {
		s.shortCode = *input.CustomSlug
	} else {
		code, err := generator.Generate(length)
		if err != nil {
			return nil, err
		}
		s.shortCode = code
	}

	return s, nil
}

// FromImport builds a short URL from an externally-sourced record. Import
// data is trusted, so URL validation is skipped; when importShortCode is set
// the original code is carried over as a custom slug. The import's validity
// window, visit quota and creation date are authoritative and override what
// normal creation set.
func FromImport(ctx context.Context,
	imported ImportedShortURL,
	importShortCode bool,
	resolver RelationResolver,
	generator ShortCodeGenerator) (*ShortURL, error) {
	input := ShortURLCreation{
		LongURL:     imported.LongURL,
		Domain:      imported.Domain,
		Tags:        imported.Tags,
		Title:       imported.Title,
		ValidateURL: false,
	}
	if importShortCode {
		code := imported.ShortCode
		input.CustomSlug = &code
	}

	s, err := NewShortURL(ctx, input, resolver, generator)
	if err != nil {
		return nil, err
	}

	s.importSource = imported.Source
	s.importOriginalShortCode = imported.ShortCode
	s.validSince = normalizeTime(imported.Meta.ValidSince)
	s.validUntil = normalizeTime(imported.Meta.ValidUntil)
	s.maxVisits = imported.Meta.MaxVisits
	s.dateCreated = imported.CreatedAt.UTC()

	return s, nil
}

// normalizeTime converts an optional timestamp to UTC.
func normalizeTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()

	return &u
}

// Update applies a partial edit in place. Each attribute is overwritten only
// when its Field was supplied; absent fields are left untouched, which keeps
// "not supplied" distinct from "explicitly cleared".
//
// The title follows a precedence rule of its own: it is replaced when the
// current title is nil, when the edit supplies one, or when both the current
// and the edited title are system guesses. A system guess may replace an
// earlier guess, but never a caller-chosen title. Whenever the title rule
// fires, the auto-resolved flag is updated to the edit's flag.
func (s *ShortURL) Update(ctx context.Context, edit ShortURLEdit, resolver RelationResolver) error {
	if resolver == nil {
		resolver = SimpleRelationResolver{}
	}

	if v, ok := edit.ValidSince.Get(); ok {
		s.validSince = v
	}
	if v, ok := edit.ValidUntil.Get(); ok {
		s.validUntil = v
	}
	if v, ok := edit.MaxVisits.Get(); ok {
		s.maxVisits = v
	}

	// a supplied nil long URL is a no-op, not a clear
	if v, ok := edit.LongURL.Get(); ok && v != nil {
		s.longURL = *v
	}

	if names, ok := edit.Tags.Get(); ok {
		tags, err := resolver.ResolveTags(ctx, names)
		if err != nil {
			return err
		}
		s.tags = tags
	}

	if v, ok := edit.Crawlable.Get(); ok {
		s.crawlable = v
	}

	if s.title == nil || edit.Title.Present() || (s.titleWasAutoResolved && edit.TitleWasAutoResolved) {
		if v, ok := edit.Title.Get(); ok {
			s.title = v
		}
		s.titleWasAutoResolved = edit.TitleWasAutoResolved
	}

	if v, ok := edit.ForwardQuery.Get(); ok {
		s.forwardQuery = v
	}

	return nil
}

// RegenerateShortCode replaces the short code with a freshly generated one of
// the recorded length. It fails when a custom slug was chosen by a caller
// (import-sourced slugs are exempt) or when the short URL already has a
// persisted identity.
func (s *ShortURL) RegenerateShortCode(generator ShortCodeGenerator) error {
	if generator == nil {
		generator = NanoIDGenerator{}
	}

	if s.customSlugWasProvided && s.importSource == "" {
		return &ShortCodeCannotBeRegeneratedError{Cause: CauseCustomSlug}
	}
	if !s.id.IsZero() {
		return &ShortCodeCannotBeRegeneratedError{Cause: CauseAlreadyPersisted}
	}

	code, err := generator.Generate(s.shortCodeLength)
	if err != nil {
		return fmt.Errorf("could not regenerate short code: %w", err)
	}
	s.shortCode = code

	return nil
}

// MarkPersisted records the identity assigned by the persistence layer. It is
// one-way: once set, the identity never changes and the short code is frozen.
func (s *ShortURL) MarkPersisted(id ShortURLID) {
	if s.id.IsZero() {
		s.id = id
	}
}

// IsEnabledAt reports whether the short URL redirects at the given instant.
// All three conditions are independently necessary: the visit quota must not
// be exhausted, now must not precede validSince, and now must not exceed
// validUntil.
func (s *ShortURL) IsEnabledAt(now time.Time) bool {
	if s.maxVisits != nil && s.VisitsCount() >= *s.maxVisits {
		return false
	}
	if s.validSince != nil && now.Before(*s.validSince) {
		return false
	}
	if s.validUntil != nil && now.After(*s.validUntil) {
		return false
	}

	return true
}

// IsEnabled is IsEnabledAt evaluated against the current time. The result is
// never cached.
func (s *ShortURL) IsEnabled() bool { return s.IsEnabledAt(time.Now()) }

// SetVisits injects the visit ledger loaded by the persistence layer. The
// aggregate never mutates it.
func (s *ShortURL) SetVisits(visits []Visit) { s.visits = visits }

// VisitsCount returns the total number of recorded visits.
func (s *ShortURL) VisitsCount() int { return len(s.visits) }

// NonBotVisitsCount returns the number of visits not flagged as potential
// bots.
func (s *ShortURL) NonBotVisitsCount() int {
	count := 0
	for _, v := range s.visits {
		if !v.PotentialBot {
			count++
		}
	}

	return count
}

// MostRecentImportedVisitDate returns the date of the last-inserted imported
// visit, or nil when none exist. "Last inserted" is decided by the insertion
// order key, not the visit date, because imported dates come from the source
// system.
func (s *ShortURL) MostRecentImportedVisitDate() *time.Time {
	var latest *Visit
	for i := range s.visits {
		v := &s.visits[i]
		if v.Type != VisitTypeImported {
			continue
		}
		if latest == nil || v.OrderKey > latest.OrderKey {
			latest = v
		}
	}
	if latest == nil {
		return nil
	}
	d := latest.Date

	return &d
}

// ID returns the persisted identity; it is zero until the short URL has been
// stored.
func (s *ShortURL) ID() ShortURLID { return s.id }

// LongURL returns the redirect target.
func (s *ShortURL) LongURL() string { return s.longURL }

// ShortCode returns the current short code.
func (s *ShortURL) ShortCode() string { return s.shortCode }

// ShortCodeLength returns the configured generated-code length.
func (s *ShortURL) ShortCodeLength() int { return s.shortCodeLength }

// DateCreated returns when the short URL was created (or, for imports, the
// creation time recorded by the source system).
func (s *ShortURL) DateCreated() time.Time { return s.dateCreated }

// Tags returns the resolved tag set. Callers must not mutate it.
func (s *ShortURL) Tags() []Tag { return s.tags }

// Domain returns the domain the code is scoped to, or nil for the default
// domain.
func (s *ShortURL) Domain() *Domain { return s.domain }

// ValidSince returns the lower bound of the active window, if any.
func (s *ShortURL) ValidSince() *time.Time { return s.validSince }

// ValidUntil returns the upper bound of the active window, if any.
func (s *ShortURL) ValidUntil() *time.Time { return s.validUntil }

// MaxVisits returns the visit quota, or nil for unlimited.
func (s *ShortURL) MaxVisits() *int { return s.maxVisits }

// CustomSlugWasProvided reports whether a caller-chosen slug was supplied at
// creation.
func (s *ShortURL) CustomSlugWasProvided() bool { return s.customSlugWasProvided }

// ImportSource names the system the short URL was imported from, or empty.
func (s *ShortURL) ImportSource() string { return s.importSource }

// ImportOriginalShortCode returns the code the URL had in the source system,
// or empty.
func (s *ShortURL) ImportOriginalShortCode() string { return s.importOriginalShortCode }

// AuthorAPIKey returns the API key credited with creating the URL, if any.
func (s *ShortURL) AuthorAPIKey() *APIKey { return s.authorAPIKey }

// Title returns the title, if any.
func (s *ShortURL) Title() *string { return s.title }

// TitleWasAutoResolved reports whether the current title is a system guess.
func (s *ShortURL) TitleWasAutoResolved() bool { return s.titleWasAutoResolved }

// Crawlable reports whether the short URL is advertised to crawlers.
func (s *ShortURL) Crawlable() bool { return s.crawlable }

// ForwardQuery reports whether redirect should merge the short URL's query
// params into the long URL.
func (s *ShortURL) ForwardQuery() bool { return s.forwardQuery }

// Visits returns the injected visit ledger. Callers must not mutate it.
func (s *ShortURL) Visits() []Visit { return s.visits }
