package shortener_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shortener/internal/shortener"
	"shortener/pkg/domain"
	"shortener/pkg/serrors"
	"shortener/pkg/storage"
	mockstorage "shortener/pkg/storage/mock"
)

const longURL = "https://example.com/some/page"

// seqGenerator returns code-0, code-1, ... so collision retries are
// observable.
type seqGenerator struct{ n int }

func (g *seqGenerator) Generate(length int) (string, error) {
	code := fmt.Sprintf("code%d", g.n)
	g.n++

	return code, nil
}

func newTestShortener(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, shortener.Shortener) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := shortener.New(st, &seqGenerator{}, shortener.Options{
		ShortCodeLength:    5,
		MaxGenerateRetries: 3,
		AutoResolveTitles:  true,
	})

	return ctrl, st, s
}

// expectWithTx wires Storage.WithTx to execute the callback with a
// MockAllStorage configured by fn.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

// storedCopy simulates what the persistence layer returns: the same aggregate
// with an assigned identity.
func storedCopy(s *domain.ShortURL) *domain.ShortURL {
	snap := s.Snapshot()
	snap.ID = domain.ShortURLID{1}

	return domain.RestoreShortURL(snap)
}

func TestShortener_Create(t *testing.T) {
	ctrl, st, s := newTestShortener(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreShortURL(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, su *domain.ShortURL) (*domain.ShortURL, error) {
				return storedCopy(su), nil
			},
		)
		// created without a title, so a resolution job is enqueued
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	res, err := s.Create(context.Background(), domain.ShortURLCreation{LongURL: longURL})
	require.NoError(t, err)
	require.Equal(t, longURL, res.LongURL())
	require.Equal(t, "code0", res.ShortCode())
	require.False(t, res.ID().IsZero())
}

func TestShortener_CreateWithTitleSkipsJob(t *testing.T) {
	ctrl, st, s := newTestShortener(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreShortURL(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, su *domain.ShortURL) (*domain.ShortURL, error) {
				return storedCopy(su), nil
			},
		)
	})

	title := "My Page"
	_, err := s.Create(context.Background(), domain.ShortURLCreation{LongURL: longURL, Title: &title})
	require.NoError(t, err)
}

func TestShortener_CreateRetriesOnCollision(t *testing.T) {
	ctrl, st, s := newTestShortener(t)

	// first attempt collides, second succeeds with a regenerated code
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreShortURL(gomock.Any(), gomock.Any()).Return(nil, storage.ErrShortCodeInUse)
	})
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreShortURL(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, su *domain.ShortURL) (*domain.ShortURL, error) {
				return storedCopy(su), nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	res, err := s.Create(context.Background(), domain.ShortURLCreation{LongURL: longURL})
	require.NoError(t, err)
	require.Equal(t, "code1", res.ShortCode())
}

func TestShortener_CreateCustomSlugCollisionConflicts(t *testing.T) {
	ctrl, st, s := newTestShortener(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreShortURL(gomock.Any(), gomock.Any()).Return(nil, storage.ErrShortCodeInUse)
	})

	slug := "taken"
	_, err := s.Create(context.Background(), domain.ShortURLCreation{LongURL: longURL, CustomSlug: &slug})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestShortener_CreateExhaustsRetries(t *testing.T) {
	ctrl, st, s := newTestShortener(t)

	for range 3 {
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().StoreShortURL(gomock.Any(), gomock.Any()).Return(nil, storage.ErrShortCodeInUse)
		})
	}

	_, err := s.Create(context.Background(), domain.ShortURLCreation{LongURL: longURL})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestShortener_CreateValidation(t *testing.T) {
	_, _, s := newTestShortener(t)

	negative := -1
	since := time.Now()
	until := since.Add(-time.Hour)
	empty := " "

	cases := []struct {
		name  string
		input domain.ShortURLCreation
	}{
		{"missing long url", domain.ShortURLCreation{}},
		{"unparseable long url", domain.ShortURLCreation{LongURL: "not a url"}},
		{"negative max visits", domain.ShortURLCreation{LongURL: longURL, MaxVisits: &negative}},
		{"inverted window", domain.ShortURLCreation{LongURL: longURL, ValidSince: &since, ValidUntil: &until}},
		{"blank custom slug", domain.ShortURLCreation{LongURL: longURL, CustomSlug: &empty}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), tc.input)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestShortener_ImportKeepsOriginalCode(t *testing.T) {
	ctrl, st, s := newTestShortener(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreShortURL(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, su *domain.ShortURL) (*domain.ShortURL, error) {
				return storedCopy(su), nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	res, err := s.Import(context.Background(), domain.ImportedShortURL{
		LongURL:   longURL,
		ShortCode: "legacy",
		Source:    "bitly",
		CreatedAt: time.Now(),
	}, true)
	require.NoError(t, err)
	require.Equal(t, "legacy", res.ShortCode())
	require.Equal(t, "bitly", res.ImportSource())
}

func TestShortener_ImportRequiresSource(t *testing.T) {
	_, _, s := newTestShortener(t)

	_, err := s.Import(context.Background(), domain.ImportedShortURL{LongURL: longURL}, false)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestShortener_ShortURLNotFound(t *testing.T) {
	_, st, s := newTestShortener(t)

	st.EXPECT().ShortURLByIdentifier(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.ShortURL(context.Background(), storage.ShortURLIdentifier{ShortCode: "nope"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestShortener_ShortURLsInvalidCursor(t *testing.T) {
	_, _, s := newTestShortener(t)

	_, _, err := s.ShortURLs(context.Background(), "not-a-time", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestShortener_EditNotFound(t *testing.T) {
	ctrl, st, s := newTestShortener(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ShortURLByIdentifierForUpdate(gomock.Any(), gomock.Any()).Return(nil, nil)
	})

	_, err := s.Edit(context.Background(), storage.ShortURLIdentifier{ShortCode: "nope"}, domain.ShortURLEdit{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestShortener_Edit(t *testing.T) {
	ctrl, st, s := newTestShortener(t)

	existing, err := domain.NewShortURL(context.Background(),
		domain.ShortURLCreation{LongURL: longURL}, nil, &seqGenerator{})
	require.NoError(t, err)
	existing.MarkPersisted(domain.ShortURLID{1})

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ShortURLByIdentifierForUpdate(gomock.Any(), gomock.Any()).Return(existing, nil)
		tx.EXPECT().EnsureTags(gomock.Any(), []string{"news"}).
			Return([]domain.Tag{{Name: "news"}}, nil)
		tx.EXPECT().UpdateShortURL(gomock.Any(), existing).Return(nil)
	})

	updated, err := s.Edit(context.Background(),
		storage.ShortURLIdentifier{ShortCode: existing.ShortCode()},
		domain.ShortURLEdit{Tags: domain.NewField([]string{"news"})})
	require.NoError(t, err)
	require.Len(t, updated.Tags(), 1)
}

func TestShortener_Delete(t *testing.T) {
	_, st, s := newTestShortener(t)

	st.EXPECT().DeleteShortURL(gomock.Any(), gomock.Any()).Return(true, nil)
	require.NoError(t, s.Delete(context.Background(), storage.ShortURLIdentifier{ShortCode: "abc"}))

	st.EXPECT().DeleteShortURL(gomock.Any(), gomock.Any()).Return(false, nil)
	err := s.Delete(context.Background(), storage.ShortURLIdentifier{ShortCode: "abc"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestShortener_RedirectRecordsVisitAndForwardsQuery(t *testing.T) {
	_, st, s := newTestShortener(t)

	su, err := domain.NewShortURL(context.Background(),
		domain.ShortURLCreation{LongURL: longURL + "?utm=keep"}, nil, &seqGenerator{})
	require.NoError(t, err)
	su.MarkPersisted(domain.ShortURLID{1})

	st.EXPECT().ShortURLByIdentifier(gomock.Any(), gomock.Any()).Return(su, nil)
	st.EXPECT().StoreVisit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, v domain.Visit) (*domain.Visit, error) {
			require.Equal(t, domain.VisitTypeNormal, v.Type)
			require.True(t, v.PotentialBot)
			require.Equal(t, su.ID(), v.ShortURLID)

			return &v, nil
		},
	)

	target, err := s.Redirect(context.Background(),
		storage.ShortURLIdentifier{ShortCode: su.ShortCode()},
		shortener.VisitContext{
			UserAgent: "Googlebot/2.1",
			Query:     url.Values{"ref": {"tw"}},
		})
	require.NoError(t, err)

	parsed, err := url.Parse(target)
	require.NoError(t, err)
	require.Equal(t, "keep", parsed.Query().Get("utm"))
	require.Equal(t, "tw", parsed.Query().Get("ref"))
}

func TestShortener_RedirectDisabled(t *testing.T) {
	_, st, s := newTestShortener(t)

	zero := 0
	su, err := domain.NewShortURL(context.Background(),
		domain.ShortURLCreation{LongURL: longURL, MaxVisits: &zero}, nil, &seqGenerator{})
	require.NoError(t, err)

	st.EXPECT().ShortURLByIdentifier(gomock.Any(), gomock.Any()).Return(su, nil)

	_, err = s.Redirect(context.Background(),
		storage.ShortURLIdentifier{ShortCode: su.ShortCode()}, shortener.VisitContext{})
	require.ErrorIs(t, err, serrors.ErrGone)
}

func TestShortener_RedirectNotFound(t *testing.T) {
	_, st, s := newTestShortener(t)

	st.EXPECT().ShortURLByIdentifier(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.Redirect(context.Background(),
		storage.ShortURLIdentifier{ShortCode: "nope"}, shortener.VisitContext{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestShortener_RedirectFoldsDefaultDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := shortener.New(st, &seqGenerator{}, shortener.Options{
		DefaultDomain:   "sho.rt",
		ShortCodeLength: 5,
	})

	su, err := domain.NewShortURL(context.Background(),
		domain.ShortURLCreation{LongURL: longURL}, nil, &seqGenerator{})
	require.NoError(t, err)
	su.MarkPersisted(domain.ShortURLID{1})

	// the configured default domain maps onto the default scope
	st.EXPECT().ShortURLByIdentifier(gomock.Any(),
		storage.ShortURLIdentifier{ShortCode: su.ShortCode(), Domain: ""}).Return(su, nil)
	st.EXPECT().StoreVisit(gomock.Any(), gomock.Any()).Return(&domain.Visit{}, nil)

	_, err = s.Redirect(context.Background(),
		storage.ShortURLIdentifier{ShortCode: su.ShortCode(), Domain: "sho.rt"},
		shortener.VisitContext{})
	require.NoError(t, err)

	// other authorities keep their own scope
	st.EXPECT().ShortURLByIdentifier(gomock.Any(),
		storage.ShortURLIdentifier{ShortCode: su.ShortCode(), Domain: "other.example"}).
		Return(nil, nil)

	_, err = s.Redirect(context.Background(),
		storage.ShortURLIdentifier{ShortCode: su.ShortCode(), Domain: "other.example"},
		shortener.VisitContext{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestShortener_CreateValidatesLongURLWhenAsked(t *testing.T) {
	ctrl, st, s := newTestShortener(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreShortURL(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, su *domain.ShortURL) (*domain.ShortURL, error) {
				return storedCopy(su), nil
			},
		)
	})

	title := "Known Page"
	_, err := s.Create(context.Background(), domain.ShortURLCreation{
		LongURL:     srv.URL,
		Title:       &title,
		ValidateURL: true,
	})
	require.NoError(t, err)
}

func TestShortener_CreateRejectsUnreachableLongURL(t *testing.T) {
	_, _, s := newTestShortener(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	// nothing must reach storage when the target does not resolve
	_, err := s.Create(context.Background(), domain.ShortURLCreation{
		LongURL:     srv.URL,
		ValidateURL: true,
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	srv.Close()
	_, err = s.Create(context.Background(), domain.ShortURLCreation{
		LongURL:     srv.URL,
		ValidateURL: true,
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestShortener_AuthenticateAPIKey(t *testing.T) {
	_, st, s := newTestShortener(t)

	_, err := s.AuthenticateAPIKey(context.Background(), "")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	st.EXPECT().APIKeyByKey(gomock.Any(), "unknown").Return(nil, nil)
	_, err = s.AuthenticateAPIKey(context.Background(), "unknown")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	st.EXPECT().APIKeyByKey(gomock.Any(), "revoked").Return(&domain.APIKey{Key: "revoked"}, nil)
	_, err = s.AuthenticateAPIKey(context.Background(), "revoked")
	require.ErrorIs(t, err, serrors.ErrForbidden)

	st.EXPECT().APIKeyByKey(gomock.Any(), "good").Return(&domain.APIKey{Key: "good", Enabled: true}, nil)
	k, err := s.AuthenticateAPIKey(context.Background(), "good")
	require.NoError(t, err)
	require.Equal(t, "good", k.Key)
}
