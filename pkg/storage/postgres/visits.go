package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"shortener/pkg/domain"
)

const (
	visitsTable = "visits"
)

// StoreVisit appends a visit to the ledger. The database assigns both the
// identity and the order key.
func (p *PgSQL) StoreVisit(ctx context.Context, v domain.Visit) (*domain.Visit, error) {
	var row PgVisit
	row.FromDomain(v)

	var stored PgVisit
	if _, err := p.Builder.Insert(visitsTable).
		Rows(row).
		Returning(&PgVisit{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store visit into pg: %w", err)
	}

	visit := stored.ToDomain()

	return &visit, nil
}

// VisitsByShortURL returns the full ledger of a short URL in insertion order.
func (p *PgSQL) VisitsByShortURL(ctx context.Context, id domain.ShortURLID) ([]domain.Visit, error) {
	var rows []PgVisit
	if err := p.Builder.From(visitsTable).
		Where(goqu.I("short_url_id").Eq(uuid.UUID(id))).
		Order(goqu.I("order_key").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch visits from pg: %w", err)
	}

	return lo.Map(rows, func(row PgVisit, _ int) domain.Visit {
		return row.ToDomain()
	}), nil
}
