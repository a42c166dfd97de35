package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"shortener/pkg/domain"
)

const (
	apiKeysTable = "api_keys"
)

// StoreAPIKey inserts a new API key and returns the stored row.
func (p *PgSQL) StoreAPIKey(ctx context.Context, k domain.APIKey) (*domain.APIKey, error) {
	row := PgAPIKey{
		Key:     k.Key,
		Name:    k.Name,
		Enabled: k.Enabled,
	}

	var stored PgAPIKey
	if _, err := p.Builder.Insert(apiKeysTable).
		Rows(row).
		Returning(&PgAPIKey{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store api key into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

// APIKeyByKey fetches an API key by its secret. Returns nil when not found.
func (p *PgSQL) APIKeyByKey(ctx context.Context, key string) (*domain.APIKey, error) {
	var row PgAPIKey
	found, err := p.Builder.From(apiKeysTable).
		Where(goqu.I("key").Eq(key)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch api key from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
