package domain

import "time"

// ShortURLSnapshot is a plain-data view of a ShortURL used by the persistence
// layer to map the aggregate to and from storage rows without breaking its
// encapsulation. It carries no behavior and enforces no invariants; only
// storage code should construct one.
type ShortURLSnapshot struct {
	ID ShortURLID

	LongURL         string
	ShortCode       string
	ShortCodeLength int
	DateCreated     time.Time

	Tags   []Tag
	Domain *Domain

	ValidSince *time.Time
	ValidUntil *time.Time
	MaxVisits  *int

	CustomSlugWasProvided   bool
	ImportSource            string
	ImportOriginalShortCode string

	AuthorAPIKey *APIKey

	Title                *string
	TitleWasAutoResolved bool

	Crawlable    bool
	ForwardQuery bool
}

// Snapshot exports the aggregate's current state. Visits are not part of the
// snapshot; they are owned by the persistence layer and injected separately.
func (s *ShortURL) Snapshot() ShortURLSnapshot {
	return ShortURLSnapshot{
		ID: s.id,

		LongURL:         s.longURL,
		ShortCode:       s.shortCode,
		ShortCodeLength: s.shortCodeLength,
		DateCreated:     s.dateCreated,

		Tags:   s.tags,
		Domain: s.domain,

		ValidSince: s.validSince,
		ValidUntil: s.validUntil,
		MaxVisits:  s.maxVisits,

		CustomSlugWasProvided:   s.customSlugWasProvided,
		ImportSource:            s.importSource,
		ImportOriginalShortCode: s.importOriginalShortCode,

		AuthorAPIKey: s.authorAPIKey,

		Title:                s.title,
		TitleWasAutoResolved: s.titleWasAutoResolved,

		Crawlable:    s.crawlable,
		ForwardQuery: s.forwardQuery,
	}
}

// RestoreShortURL rehydrates an aggregate from a snapshot previously loaded
// from storage. The restored aggregate is considered persisted when the
// snapshot carries a non-zero ID.
func RestoreShortURL(snap ShortURLSnapshot) *ShortURL {
	return &ShortURL{
		id: snap.ID,

		longURL:         snap.LongURL,
		shortCode:       snap.ShortCode,
		shortCodeLength: snap.ShortCodeLength,
		dateCreated:     snap.DateCreated,

		tags:   snap.Tags,
		domain: snap.Domain,

		validSince: snap.ValidSince,
		validUntil: snap.ValidUntil,
		maxVisits:  snap.MaxVisits,

		customSlugWasProvided:   snap.CustomSlugWasProvided,
		importSource:            snap.ImportSource,
		importOriginalShortCode: snap.ImportOriginalShortCode,

		authorAPIKey: snap.AuthorAPIKey,

		title:                snap.Title,
		titleWasAutoResolved: snap.TitleWasAutoResolved,

		crawlable:    snap.Crawlable,
		forwardQuery: snap.ForwardQuery,
	}
}
