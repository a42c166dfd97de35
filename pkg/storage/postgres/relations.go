package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/samber/lo"

	"shortener/pkg/domain"
)

const (
	tagsTable    = "tags"
	domainsTable = "domains"
)

// EnsureTags resolves raw names to persisted tags, creating missing ones. The
// upsert updates the name to itself so RETURNING yields a row for both new
// and pre-existing tags.
func (p *PgSQL) EnsureTags(ctx context.Context, names []string) ([]domain.Tag, error) {
	normalized := lo.Uniq(lo.FilterMap(names, func(name string, _ int) (string, bool) {
		n := domain.NormalizeTagName(name)

		return n, n != ""
	}))
	if len(normalized) == 0 {
		return nil, nil
	}

	rows := lo.Map(normalized, func(name string, _ int) goqu.Record {
		return goqu.Record{"name": name}
	})

	var pgTags []PgTag
	if err := p.Builder.Insert(tagsTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("name", goqu.Record{"name": goqu.I("excluded.name")})).
		Returning(&PgTag{}).
		Executor().ScanStructsContext(ctx, &pgTags); err != nil {
		return nil, fmt.Errorf("could not ensure tags in pg: %w", err)
	}

	// keep the caller's order
	byName := lo.KeyBy(pgTags, func(t PgTag) string {
		return t.Name
	})

	return lo.Map(normalized, func(name string, _ int) domain.Tag {
		t := byName[name]

		return t.ToDomain()
	}), nil
}

// EnsureDomain resolves an authority to a persisted domain, creating it when
// missing. An empty authority means the default domain and yields nil.
func (p *PgSQL) EnsureDomain(ctx context.Context, authority string) (*domain.Domain, error) {
	if authority == "" {
		return nil, nil
	}

	var row PgDomain
	if _, err := p.Builder.Insert(domainsTable).
		Rows(goqu.Record{"authority": authority}).
		OnConflict(goqu.DoUpdate("authority", goqu.Record{"authority": goqu.I("excluded.authority")})).
		Returning(&PgDomain{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not ensure domain in pg: %w", err)
	}

	return row.ToDomain(), nil
}
