package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"shortener/pkg/domain"
)

// PgShortURL is the row model for the short_urls table. Relations (tags,
// domain, author API key) live in their own tables and are attached when a
// snapshot is assembled.
type PgShortURL struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	LongURL         string    `db:"long_url"`
	ShortCode       string    `db:"short_code"`
	ShortCodeLength int       `db:"short_code_length"`
	DateCreated     time.Time `db:"date_created"`

	DomainID uuid.NullUUID `db:"domain_id"`

	ValidSince sql.NullTime  `db:"valid_since"`
	ValidUntil sql.NullTime  `db:"valid_until"`
	MaxVisits  sql.NullInt64 `db:"max_visits"`

	CustomSlugWasProvided   bool           `db:"custom_slug_was_provided"`
	ImportSource            sql.NullString `db:"import_source"`
	ImportOriginalShortCode sql.NullString `db:"import_original_short_code"`

	AuthorAPIKeyID uuid.NullUUID `db:"author_api_key_id"`

	Title                sql.NullString `db:"title"`
	TitleWasAutoResolved bool           `db:"title_was_auto_resolved"`

	Crawlable    bool `db:"crawlable"`
	ForwardQuery bool `db:"forward_query"`
}

// FromSnapshot fills the row model from an aggregate snapshot. Relation IDs
// must already be canonical (ensured) before calling.
func (p *PgShortURL) FromSnapshot(snap domain.ShortURLSnapshot) {
	*p = PgShortURL{
		ID: uuid.UUID(snap.ID),

		LongURL:         snap.LongURL,
		ShortCode:       snap.ShortCode,
		ShortCodeLength: snap.ShortCodeLength,
		DateCreated:     snap.DateCreated,

		CustomSlugWasProvided: snap.CustomSlugWasProvided,
		ImportSource: sql.NullString{
			String: snap.ImportSource,
			Valid:  snap.ImportSource != "",
		},
		ImportOriginalShortCode: sql.NullString{
			String: snap.ImportOriginalShortCode,
			Valid:  snap.ImportOriginalShortCode != "",
		},

		TitleWasAutoResolved: snap.TitleWasAutoResolved,
		Crawlable:            snap.Crawlable,
		ForwardQuery:         snap.ForwardQuery,
	}

	if snap.Domain != nil {
		p.DomainID = uuid.NullUUID{UUID: uuid.UUID(snap.Domain.ID), Valid: true}
	}
	if snap.AuthorAPIKey != nil {
		p.AuthorAPIKeyID = uuid.NullUUID{UUID: uuid.UUID(snap.AuthorAPIKey.ID), Valid: true}
	}
	if snap.ValidSince != nil {
		p.ValidSince = sql.NullTime{Time: *snap.ValidSince, Valid: true}
	}
	if snap.ValidUntil != nil {
		p.ValidUntil = sql.NullTime{Time: *snap.ValidUntil, Valid: true}
	}
	if snap.MaxVisits != nil {
		p.MaxVisits = sql.NullInt64{Int64: int64(*snap.MaxVisits), Valid: true}
	}
	if snap.Title != nil {
		p.Title = sql.NullString{String: *snap.Title, Valid: true}
	}
}

// ToSnapshot converts the row back into an aggregate snapshot. tags, dom and
// key carry the separately-loaded relations; any of them may be empty/nil.
func (p *PgShortURL) ToSnapshot(tags []domain.Tag, dom *domain.Domain, key *domain.APIKey) domain.ShortURLSnapshot {
	snap := domain.ShortURLSnapshot{
		ID: domain.ShortURLID(p.ID),

		LongURL:         p.LongURL,
		ShortCode:       p.ShortCode,
		ShortCodeLength: p.ShortCodeLength,
		DateCreated:     p.DateCreated,

		Tags:   tags,
		Domain: dom,

		CustomSlugWasProvided:   p.CustomSlugWasProvided,
		ImportSource:            p.ImportSource.String,
		ImportOriginalShortCode: p.ImportOriginalShortCode.String,

		AuthorAPIKey: key,

		TitleWasAutoResolved: p.TitleWasAutoResolved,
		Crawlable:            p.Crawlable,
		ForwardQuery:         p.ForwardQuery,
	}

	if p.ValidSince.Valid {
		t := p.ValidSince.Time
		snap.ValidSince = &t
	}
	if p.ValidUntil.Valid {
		t := p.ValidUntil.Time
		snap.ValidUntil = &t
	}
	if p.MaxVisits.Valid {
		n := int(p.MaxVisits.Int64)
		snap.MaxVisits = &n
	}
	if p.Title.Valid {
		t := p.Title.String
		snap.Title = &t
	}

	return snap
}

// PgTag is the row model for the tags table.
type PgTag struct {
	ID   uuid.UUID `db:"id" goqu:"skipinsert"`
	Name string    `db:"name"`
}

func (p *PgTag) ToDomain() domain.Tag {
	return domain.Tag{ID: domain.TagID(p.ID), Name: p.Name}
}

// PgDomain is the row model for the domains table.
type PgDomain struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	Authority string    `db:"authority"`
}

func (p *PgDomain) ToDomain() *domain.Domain {
	return &domain.Domain{ID: domain.DomainID(p.ID), Authority: p.Authority}
}

// PgVisit is the row model for the visits table. OrderKey is assigned by the
// database on insert and defines the ledger's insertion order.
type PgVisit struct {
	ID       uuid.UUID `db:"id" goqu:"skipinsert"`
	OrderKey int64     `db:"order_key" goqu:"skipinsert"`

	ShortURLID   uuid.UUID `db:"short_url_id"`
	Date         time.Time `db:"date"`
	PotentialBot bool      `db:"potential_bot"`
	Type         string    `db:"type"`
	RemoteAddr   string    `db:"remote_addr"`
	UserAgent    string    `db:"user_agent"`
	Referer      string    `db:"referer"`
}

func (p *PgVisit) ToDomain() domain.Visit {
	return domain.Visit{
		ID:           domain.VisitID(p.ID),
		ShortURLID:   domain.ShortURLID(p.ShortURLID),
		Date:         p.Date,
		PotentialBot: p.PotentialBot,
		Type:         domain.VisitType(p.Type),
		RemoteAddr:   p.RemoteAddr,
		UserAgent:    p.UserAgent,
		Referer:      p.Referer,
		OrderKey:     p.OrderKey,
	}
}

func (p *PgVisit) FromDomain(v domain.Visit) {
	*p = PgVisit{
		ID:           uuid.UUID(v.ID),
		OrderKey:     v.OrderKey,
		ShortURLID:   uuid.UUID(v.ShortURLID),
		Date:         v.Date,
		PotentialBot: v.PotentialBot,
		Type:         string(v.Type),
		RemoteAddr:   v.RemoteAddr,
		UserAgent:    v.UserAgent,
		Referer:      v.Referer,
	}
}

// PgAPIKey is the row model for the api_keys table.
type PgAPIKey struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	Key       string    `db:"key"`
	Name      string    `db:"name"`
	Enabled   bool      `db:"enabled"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgAPIKey) ToDomain() *domain.APIKey {
	return &domain.APIKey{
		ID:        domain.APIKeyID(p.ID),
		Key:       p.Key,
		Name:      p.Name,
		Enabled:   p.Enabled,
		CreatedAt: p.CreatedAt,
	}
}
