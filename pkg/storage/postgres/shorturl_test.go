package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"shortener/pkg/domain"
	"shortener/pkg/storage"
)

// makeShortURL builds an unpersisted aggregate with a fixed slug so tests
// control the short code.
func makeShortURL(t *testing.T, longURL, slug string) *domain.ShortURL {
	t.Helper()

	s, err := domain.NewShortURL(context.Background(), domain.ShortURLCreation{
		LongURL:    longURL,
		CustomSlug: &slug,
	}, nil, nil)
	require.NoError(t, err)

	return s
}

func TestPgSQL_StoreShortURL(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	slug := "hello"
	s, err := domain.NewShortURL(ctx, domain.ShortURLCreation{
		LongURL:    "https://example.com/greeting",
		CustomSlug: &slug,
		Domain:     "s.example.com",
		Tags:       []string{"News", "tech", "news"},
	}, nil, nil)
	require.NoError(t, err)

	stored, err := pgSQL.StoreShortURL(ctx, s)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID()))
	require.Equal(t, "hello", stored.ShortCode())
	require.Equal(t, "https://example.com/greeting", stored.LongURL())

	// tags come back canonical and deduplicated
	names := lo.Map(stored.Tags(), func(tag domain.Tag, _ int) string { return tag.Name })
	require.ElementsMatch(t, []string{"news", "tech"}, names)
	for _, tag := range stored.Tags() {
		require.NotEqual(t, uuid.Nil, uuid.UUID(tag.ID))
	}

	require.NotNil(t, stored.Domain())
	require.Equal(t, "s.example.com", stored.Domain().Authority)

	// round trip through the identifier
	got, err := pgSQL.ShortURLByIdentifier(ctx, storage.ShortURLIdentifier{
		ShortCode: "hello",
		Domain:    "s.example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.ID(), got.ID())
	require.Equal(t, "https://example.com/greeting", got.LongURL())

	// the same code is not registered on the default domain
	got, err = pgSQL.ShortURLByIdentifier(ctx, storage.ShortURLIdentifier{ShortCode: "hello"})
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_StoreShortURL_CodeCollision(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	_, err := pgSQL.StoreShortURL(ctx, makeShortURL(t, "https://example.com/1", "taken"))
	require.NoError(t, err)

	// same code on the default domain collides
	_, err = pgSQL.StoreShortURL(ctx, makeShortURL(t, "https://example.com/2", "taken"))
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrShortCodeInUse)

	// same code scoped to another domain is fine
	slug := "taken"
	scoped, err := domain.NewShortURL(ctx, domain.ShortURLCreation{
		LongURL:    "https://example.com/3",
		CustomSlug: &slug,
		Domain:     "other.example.com",
	}, nil, nil)
	require.NoError(t, err)
	_, err = pgSQL.StoreShortURL(ctx, scoped)
	require.NoError(t, err)
}

func TestPgSQL_UpdateShortURL(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	slug := "mutable"
	s, err := domain.NewShortURL(ctx, domain.ShortURLCreation{
		LongURL:    "https://example.com/old",
		CustomSlug: &slug,
		Tags:       []string{"old"},
	}, nil, nil)
	require.NoError(t, err)

	stored, err := pgSQL.StoreShortURL(ctx, s)
	require.NoError(t, err)

	newURL := "https://example.com/new"
	title := "New Title"
	maxVisits := 10
	err = stored.Update(ctx, domain.ShortURLEdit{
		LongURL:   domain.NewField(&newURL),
		Title:     domain.NewField(&title),
		MaxVisits: domain.NewField(&maxVisits),
		Tags:      domain.NewField([]string{"fresh", "shiny"}),
	}, storage.NewPersistentRelationResolver(pgSQL))
	require.NoError(t, err)

	require.NoError(t, pgSQL.UpdateShortURL(ctx, stored))

	got, err := pgSQL.ShortURLByID(ctx, stored.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, newURL, got.LongURL())
	require.NotNil(t, got.Title())
	require.Equal(t, title, *got.Title())
	require.NotNil(t, got.MaxVisits())
	require.Equal(t, maxVisits, *got.MaxVisits())
	names := lo.Map(got.Tags(), func(tag domain.Tag, _ int) string { return tag.Name })
	require.ElementsMatch(t, []string{"fresh", "shiny"}, names)
}

func TestPgSQL_ShortURLForUpdate(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreShortURL(ctx, makeShortURL(t, "https://example.com/locked", "locked"))
	require.NoError(t, err)

	// the locked variants load the same aggregate and hold the row until
	// the transaction ends
	require.NoError(t, pgSQL.WithTx(ctx, func(tx storage.AllStorage) error {
		byIdent, err := tx.ShortURLByIdentifierForUpdate(ctx,
			storage.ShortURLIdentifier{ShortCode: "locked"})
		require.NoError(t, err)
		require.NotNil(t, byIdent)
		require.Equal(t, stored.ID(), byIdent.ID())

		byID, err := tx.ShortURLByIDForUpdate(ctx, stored.ID())
		require.NoError(t, err)
		require.NotNil(t, byID)
		require.Equal(t, "https://example.com/locked", byID.LongURL())

		missing, err := tx.ShortURLByIDForUpdate(ctx, domain.ShortURLID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, missing)

		return nil
	}))
}

func TestPgSQL_DeleteShortURL(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreShortURL(ctx, makeShortURL(t, "https://delete.me", "gone"))
	require.NoError(t, err)

	// attach a visit so the cascade has something to clean up
	_, err = pgSQL.StoreVisit(ctx, domain.Visit{
		ShortURLID: stored.ID(),
		Date:       time.Now(),
		Type:       domain.VisitTypeNormal,
	})
	require.NoError(t, err)

	ident := storage.ShortURLIdentifier{ShortCode: "gone"}

	deleted, err := pgSQL.DeleteShortURL(ctx, ident)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := pgSQL.ShortURLByIdentifier(ctx, ident)
	require.NoError(t, err)
	require.Nil(t, got)

	visits, err := pgSQL.VisitsByShortURL(ctx, stored.ID())
	require.NoError(t, err)
	require.Empty(t, visits)

	// deleting again reports nothing removed
	deleted, err = pgSQL.DeleteShortURL(ctx, ident)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestPgSQL_ShortURLs_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	// imported records carry their own creation dates, giving the page a
	// deterministic order
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	codes := []string{"pg1", "pg2", "pg3"}
	for i, code := range codes {
		imported, err := domain.FromImport(ctx, domain.ImportedShortURL{
			LongURL:   "https://example.com/" + code,
			ShortCode: code,
			Source:    "bitly",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}, true, nil, nil)
		require.NoError(t, err)

		_, err = pgSQL.StoreShortURL(ctx, imported)
		require.NoError(t, err)
	}

	// first page: newest two, with a cursor for the rest
	page, err := pgSQL.ShortURLs(ctx, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, page.ShortURLs, 2)
	require.Equal(t, "pg3", page.ShortURLs[0].ShortCode())
	require.Equal(t, "pg2", page.ShortURLs[1].ShortCode())
	require.NotNil(t, page.NextCursor)

	// second page: the remaining record, no cursor
	page, err = pgSQL.ShortURLs(ctx, *page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page.ShortURLs, 1)
	require.Equal(t, "pg1", page.ShortURLs[0].ShortCode())
	require.Nil(t, page.NextCursor)
}

func TestPgSQL_Visits(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreShortURL(ctx, makeShortURL(t, "https://example.com/visited", "visited"))
	require.NoError(t, err)

	// an imported visit with an old date, then a live one
	old := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	first, err := pgSQL.StoreVisit(ctx, domain.Visit{
		ShortURLID: stored.ID(),
		Date:       old,
		Type:       domain.VisitTypeImported,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(first.ID))

	second, err := pgSQL.StoreVisit(ctx, domain.Visit{
		ShortURLID:   stored.ID(),
		Date:         time.Now(),
		Type:         domain.VisitTypeNormal,
		UserAgent:    "curl/8.0",
		PotentialBot: true,
	})
	require.NoError(t, err)
	require.Greater(t, second.OrderKey, first.OrderKey)

	// the ledger comes back in insertion order regardless of dates
	visits, err := pgSQL.VisitsByShortURL(ctx, stored.ID())
	require.NoError(t, err)
	require.Len(t, visits, 2)
	require.Equal(t, domain.VisitTypeImported, visits[0].Type)
	require.Equal(t, domain.VisitTypeNormal, visits[1].Type)

	// hydration attaches the ledger to the aggregate
	got, err := pgSQL.ShortURLByID(ctx, stored.ID())
	require.NoError(t, err)
	require.Equal(t, 2, got.VisitsCount())
	require.Equal(t, 1, got.NonBotVisitsCount())
	mostRecent := got.MostRecentImportedVisitDate()
	require.NotNil(t, mostRecent)
	require.True(t, old.Equal(*mostRecent))
}
