package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/lo"

	"shortener/pkg/domain"
	"shortener/pkg/storage"
)

const (
	shortURLsTable       = "short_urls"
	shortURLsInTagsTable = "short_urls_in_tags"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// StoreShortURL inserts the aggregate row, canonicalizes its relations and
// writes the tag join rows. Callers usually run it inside WithTx so the whole
// insert is atomic.
func (p *PgSQL) StoreShortURL(ctx context.Context, s *domain.ShortURL) (*domain.ShortURL, error) {
	snap := s.Snapshot()

	tags, err := p.EnsureTags(ctx, lo.Map(snap.Tags, func(t domain.Tag, _ int) string {
		return t.Name
	}))
	if err != nil {
		return nil, err
	}
	snap.Tags = tags

	if snap.Domain != nil {
		dom, err := p.EnsureDomain(ctx, snap.Domain.Authority)
		if err != nil {
			return nil, err
		}

		snap.Domain = dom
	}

	var row PgShortURL
	row.FromSnapshot(snap)

	var stored PgShortURL
	if _, err := p.Builder.Insert(shortURLsTable).
		Rows(row).
		Returning(&PgShortURL{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, storage.ErrShortCodeInUse
		}

		return nil, fmt.Errorf("could not store short url into pg: %w", err)
	}

	if err := p.replaceTagRelations(ctx, stored.ID, tags); err != nil {
		return nil, err
	}

	return domain.RestoreShortURL(stored.ToSnapshot(tags, snap.Domain, snap.AuthorAPIKey)), nil
}

// UpdateShortURL persists the mutable attributes of the aggregate and
// replaces its tag relations wholesale. The short code and domain scope are
// fixed once persisted and are not touched here.
func (p *PgSQL) UpdateShortURL(ctx context.Context, s *domain.ShortURL) error {
	snap := s.Snapshot()

	tags, err := p.EnsureTags(ctx, lo.Map(snap.Tags, func(t domain.Tag, _ int) string {
		return t.Name
	}))
	if err != nil {
		return err
	}

	var row PgShortURL
	row.FromSnapshot(snap)

	rec := goqu.Record{
		"long_url":                row.LongURL,
		"valid_since":             row.ValidSince,
		"valid_until":             row.ValidUntil,
		"max_visits":              row.MaxVisits,
		"title":                   row.Title,
		"title_was_auto_resolved": row.TitleWasAutoResolved,
		"crawlable":               row.Crawlable,
		"forward_query":           row.ForwardQuery,
	}

	if _, err := p.Builder.Update(shortURLsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(snap.ID))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not update short url in pg: %w", err)
	}

	return p.replaceTagRelations(ctx, uuid.UUID(snap.ID), tags)
}

// replaceTagRelations rewrites the join rows of a short URL to exactly the
// given tag set.
func (p *PgSQL) replaceTagRelations(ctx context.Context, shortURLID uuid.UUID, tags []domain.Tag) error {
	if _, err := p.Builder.Delete(shortURLsInTagsTable).
		Where(goqu.I("short_url_id").Eq(shortURLID)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear tag relations in pg: %w", err)
	}

	if len(tags) == 0 {
		return nil
	}

	rows := lo.Map(tags, func(t domain.Tag, _ int) goqu.Record {
		return goqu.Record{
			"short_url_id": shortURLID,
			"tag_id":       uuid.UUID(t.ID),
		}
	})

	if _, err := p.Builder.Insert(shortURLsInTagsTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store tag relations into pg: %w", err)
	}

	return nil
}

// identifierExpressions translates a ShortURLIdentifier into goqu where
// clauses. An empty Domain selects rows scoped to the default domain
// (domain_id IS NULL).
func (p *PgSQL) identifierExpressions(ident storage.ShortURLIdentifier) []goqu.Expression {
	w := []goqu.Expression{
		goqu.I("short_code").Eq(ident.ShortCode),
	}
	if ident.Domain == "" {
		w = append(w, goqu.I("domain_id").IsNull())
	} else {
		w = append(w, goqu.I("domain_id").Eq(
			p.Builder.From(domainsTable).Select("id").Where(goqu.I("authority").Eq(ident.Domain)),
		))
	}

	return w
}

// fetchShortURL loads and hydrates a single short URL matching the given
// expressions. When lock is set the row is selected FOR UPDATE so it stays
// pinned until the surrounding transaction ends.
func (p *PgSQL) fetchShortURL(ctx context.Context, lock bool, where ...goqu.Expression) (*domain.ShortURL, error) {
	ds := p.Builder.From(shortURLsTable).Where(where...)
	if lock {
		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgShortURL
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch short url from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return p.hydrateShortURL(ctx, row)
}

// ShortURLByIdentifier loads a short URL by (code, domain) with its tags,
// domain, author key and visit ledger. Returns nil when not found.
func (p *PgSQL) ShortURLByIdentifier(ctx context.Context, ident storage.ShortURLIdentifier) (*domain.ShortURL, error) {
	return p.fetchShortURL(ctx, false, p.identifierExpressions(ident)...)
}

// ShortURLByIdentifierForUpdate is ShortURLByIdentifier with a row lock held
// for the rest of the transaction. Only meaningful inside WithTx.
func (p *PgSQL) ShortURLByIdentifierForUpdate(ctx context.Context, ident storage.ShortURLIdentifier) (*domain.ShortURL, error) {
	return p.fetchShortURL(ctx, true, p.identifierExpressions(ident)...)
}

// ShortURLByID loads a short URL by identity, with relations and visits.
// Returns nil when not found.
func (p *PgSQL) ShortURLByID(ctx context.Context, id domain.ShortURLID) (*domain.ShortURL, error) {
	return p.fetchShortURL(ctx, false, goqu.I("id").Eq(uuid.UUID(id)))
}

// ShortURLByIDForUpdate is ShortURLByID with a row lock held for the rest of
// the transaction. Only meaningful inside WithTx.
func (p *PgSQL) ShortURLByIDForUpdate(ctx context.Context, id domain.ShortURLID) (*domain.ShortURL, error) {
	return p.fetchShortURL(ctx, true, goqu.I("id").Eq(uuid.UUID(id)))
}

// DeleteShortURL removes a short URL; the visit ledger and tag relations go
// with it via ON DELETE CASCADE. Reports whether a row was deleted.
func (p *PgSQL) DeleteShortURL(ctx context.Context, ident storage.ShortURLIdentifier) (bool, error) {
	res, err := p.Builder.Delete(shortURLsTable).
		Where(p.identifierExpressions(ident)...).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete short url in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

// ShortURLs returns a page of short URLs created before the optional cursor,
// newest first. Each aggregate is hydrated with its relations and visits.
func (p *PgSQL) ShortURLs(ctx context.Context, cursor time.Time, limit uint) (storage.ShortURLsPage, error) {
	var w []goqu.Expression
	if !cursor.IsZero() {
		w = append(w, goqu.I("date_created").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(shortURLsTable).
		Where(w...).
		Order(goqu.I("date_created").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgShortURL
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ShortURLsPage{}, fmt.Errorf("could not fetch short urls from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].DateCreated
		rows = trimmed
	}

	shortURLs := make([]*domain.ShortURL, 0, len(rows))
	for _, row := range rows {
		s, err := p.hydrateShortURL(ctx, row)
		if err != nil {
			return storage.ShortURLsPage{}, err
		}

		shortURLs = append(shortURLs, s)
	}

	return storage.ShortURLsPage{
		ShortURLs:  shortURLs,
		NextCursor: nextCursor,
	}, nil
}

// hydrateShortURL attaches tags, domain, author key and the visit ledger to a
// loaded row and restores the aggregate.
func (p *PgSQL) hydrateShortURL(ctx context.Context, row PgShortURL) (*domain.ShortURL, error) {
	var pgTags []PgTag
	if err := p.Builder.From(tagsTable).
		Join(goqu.T(shortURLsInTagsTable), goqu.On(goqu.I(tagsTable+".id").Eq(goqu.I(shortURLsInTagsTable+".tag_id")))).
		Where(goqu.I(shortURLsInTagsTable + ".short_url_id").Eq(row.ID)).
		Select(goqu.I(tagsTable+".id"), goqu.I(tagsTable+".name")).
		Order(goqu.I(tagsTable + ".name").Asc()).
		Executor().ScanStructsContext(ctx, &pgTags); err != nil {
		return nil, fmt.Errorf("could not fetch tags of short url: %w", err)
	}

	tags := lo.Map(pgTags, func(t PgTag, _ int) domain.Tag {
		return t.ToDomain()
	})

	var dom *domain.Domain
	if row.DomainID.Valid {
		var pgDom PgDomain
		found, err := p.Builder.From(domainsTable).
			Where(goqu.I("id").Eq(row.DomainID.UUID)).
			Executor().ScanStructContext(ctx, &pgDom)
		if err != nil {
			return nil, fmt.Errorf("could not fetch domain of short url: %w", err)
		}
		if found {
			dom = pgDom.ToDomain()
		}
	}

	var key *domain.APIKey
	if row.AuthorAPIKeyID.Valid {
		var pgKey PgAPIKey
		found, err := p.Builder.From(apiKeysTable).
			Where(goqu.I("id").Eq(row.AuthorAPIKeyID.UUID)).
			Executor().ScanStructContext(ctx, &pgKey)
		if err != nil {
			return nil, fmt.Errorf("could not fetch author api key of short url: %w", err)
		}
		if found {
			key = pgKey.ToDomain()
		}
	}

	visits, err := p.VisitsByShortURL(ctx, domain.ShortURLID(row.ID))
	if err != nil {
		return nil, err
	}

	s := domain.RestoreShortURL(row.ToSnapshot(tags, dom, key))
	s.SetVisits(visits)

	return s, nil
}
