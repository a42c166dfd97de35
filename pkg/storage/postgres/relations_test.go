package postgres_test

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"shortener/pkg/domain"
)

func TestPgSQL_EnsureTags(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	// mixed case and duplicates collapse to canonical names, caller order kept
	tags, err := pgSQL.EnsureTags(ctx, []string{"News", " tech ", "news"})
	require.NoError(t, err)
	require.Equal(t, []string{"news", "tech"},
		lo.Map(tags, func(tag domain.Tag, _ int) string { return tag.Name }))

	// ensuring again yields the same identities
	again, err := pgSQL.EnsureTags(ctx, []string{"tech", "news"})
	require.NoError(t, err)
	require.Len(t, again, 2)
	byName := lo.KeyBy(tags, func(tag domain.Tag) string { return tag.Name })
	for _, tag := range again {
		require.Equal(t, byName[tag.Name].ID, tag.ID)
	}

	// empty input is a no-op
	none, err := pgSQL.EnsureTags(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestPgSQL_EnsureDomain(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	dom, err := pgSQL.EnsureDomain(ctx, "s.example.com")
	require.NoError(t, err)
	require.NotNil(t, dom)
	require.Equal(t, "s.example.com", dom.Authority)

	// idempotent: same authority resolves to the same identity
	again, err := pgSQL.EnsureDomain(ctx, "s.example.com")
	require.NoError(t, err)
	require.Equal(t, dom.ID, again.ID)

	// empty authority means the default domain
	none, err := pgSQL.EnsureDomain(ctx, "")
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestPgSQL_APIKeys(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreAPIKey(ctx, domain.APIKey{
		Key:     "secret-key",
		Name:    "ci",
		Enabled: true,
	})
	require.NoError(t, err)
	require.False(t, stored.CreatedAt.IsZero())

	got, err := pgSQL.APIKeyByKey(ctx, "secret-key")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.ID, got.ID)
	require.Equal(t, "ci", got.Name)
	require.True(t, got.Enabled)

	missing, err := pgSQL.APIKeyByKey(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)
}
