package resthandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shortener/internal/api/handler/resthandler"
	"shortener/internal/shortener"
	mockshortener "shortener/internal/shortener/mock"
	"shortener/pkg/domain"
	"shortener/pkg/logger"
	"shortener/pkg/serrors"
	"shortener/pkg/storage"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestMux(t *testing.T) (*mockshortener.MockShortener, *http.ServeMux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mockshortener.NewMockShortener(ctrl)

	mux := http.NewServeMux()
	h := resthandler.New(svc)
	h.Register(mux)
	mux.HandleFunc("GET /{shortCode}", h.RedirectShortURL)

	return svc, mux
}

// expectAuth lets any number of authenticated requests through.
func expectAuth(svc *mockshortener.MockShortener) {
	svc.EXPECT().AuthenticateAPIKey(gomock.Any(), "valid-key").
		Return(&domain.APIKey{Key: "valid-key", Enabled: true}, nil).AnyTimes()
}

func makeShortURL(t *testing.T, input domain.ShortURLCreation) *domain.ShortURL {
	t.Helper()

	su, err := domain.NewShortURL(context.Background(), input, nil, nil)
	require.NoError(t, err)
	su.MarkPersisted(domain.ShortURLID{1})

	return su
}

func doJSON(mux *http.ServeMux, method, target, apiKey, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if apiKey != "" {
		req.Header.Set("X-Api-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func TestCreateShortURL(t *testing.T) {
	svc, mux := newTestMux(t)
	expectAuth(svc)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input domain.ShortURLCreation) (*domain.ShortURL, error) {
			require.Equal(t, "https://example.com/page", input.LongURL)
			require.Equal(t, []string{"News", "news"}, input.Tags)
			require.NotNil(t, input.AuthorAPIKey)
			require.Equal(t, "valid-key", input.AuthorAPIKey.Key)

			return makeShortURL(t, input), nil
		},
	)

	rec := doJSON(mux, http.MethodPost, "/rest/v1/short-urls", "valid-key",
		`{"longUrl":"https://example.com/page","tags":["News","news"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var payload struct {
		ShortCode string   `json:"shortCode"`
		LongURL   string   `json:"longUrl"`
		Tags      []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.NotEmpty(t, payload.ShortCode)
	require.Equal(t, "https://example.com/page", payload.LongURL)
	require.Equal(t, []string{"news"}, payload.Tags)
}

func TestCreateShortURLRejectsBadBody(t *testing.T) {
	svc, mux := newTestMux(t)
	expectAuth(svc)

	rec := doJSON(mux, http.MethodPost, "/rest/v1/short-urls", "valid-key", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMissingAPIKey(t *testing.T) {
	svc, mux := newTestMux(t)

	svc.EXPECT().AuthenticateAPIKey(gomock.Any(), "").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "missing api key"))

	rec := doJSON(mux, http.MethodPost, "/rest/v1/short-urls", "", `{}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetShortURLNotFound(t *testing.T) {
	svc, mux := newTestMux(t)
	expectAuth(svc)

	svc.EXPECT().ShortURL(gomock.Any(), storage.ShortURLIdentifier{ShortCode: "nope", Domain: "s.example.com"}).
		Return(nil, serrors.With(serrors.ErrNotFound, "short url not found"))

	rec := doJSON(mux, http.MethodGet, "/rest/v1/short-urls/nope?domain=s.example.com", "valid-key", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var payload struct {
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, http.StatusNotFound, payload.Status)
	require.Contains(t, payload.Detail, "not found")
}

func TestEditShortURLFieldPresence(t *testing.T) {
	svc, mux := newTestMux(t)
	expectAuth(svc)

	svc.EXPECT().Edit(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ storage.ShortURLIdentifier, edit domain.ShortURLEdit) (*domain.ShortURL, error) {
			// maxVisits supplied as null clears it; title untouched
			v, ok := edit.MaxVisits.Get()
			require.True(t, ok)
			require.Nil(t, v)
			require.False(t, edit.Title.Present())
			require.True(t, edit.Crawlable.Present())
			require.True(t, edit.Crawlable.Value())

			return makeShortURL(t, domain.ShortURLCreation{LongURL: "https://example.com"}), nil
		},
	)

	rec := doJSON(mux, http.MethodPatch, "/rest/v1/short-urls/abc12", "valid-key",
		`{"maxVisits":null,"crawlable":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteShortURL(t *testing.T) {
	svc, mux := newTestMux(t)
	expectAuth(svc)

	svc.EXPECT().Delete(gomock.Any(), storage.ShortURLIdentifier{ShortCode: "abc12"}).Return(nil)

	rec := doJSON(mux, http.MethodDelete, "/rest/v1/short-urls/abc12", "valid-key", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListShortURLs(t *testing.T) {
	svc, mux := newTestMux(t)
	expectAuth(svc)

	su := makeShortURL(t, domain.ShortURLCreation{LongURL: "https://example.com"})
	svc.EXPECT().ShortURLs(gomock.Any(), "", uint(10)).
		Return([]*domain.ShortURL{su}, "2026-01-02T15:04:05Z", nil)

	rec := doJSON(mux, http.MethodGet, "/rest/v1/short-urls?itemsPerPage=10", "valid-key", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		ShortURLs  []json.RawMessage `json:"shortUrls"`
		NextCursor string            `json:"nextCursor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.ShortURLs, 1)
	require.Equal(t, "2026-01-02T15:04:05Z", payload.NextCursor)
}

func TestListShortURLsRejectsBadPageSize(t *testing.T) {
	svc, mux := newTestMux(t)
	expectAuth(svc)

	rec := doJSON(mux, http.MethodGet, "/rest/v1/short-urls?itemsPerPage=9999", "valid-key", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportShortURLs(t *testing.T) {
	svc, mux := newTestMux(t)
	expectAuth(svc)

	svc.EXPECT().Import(gomock.Any(), gomock.Any(), true).DoAndReturn(
		func(ctx context.Context, rec domain.ImportedShortURL, _ bool) (*domain.ShortURL, error) {
			require.Equal(t, "bitly", rec.Source)

			return domain.FromImport(ctx, rec, true, nil, nil)
		},
	)

	rec := doJSON(mux, http.MethodPost, "/rest/v1/short-urls/import", "valid-key",
		`{"importShortCodes":true,"shortUrls":[{"longUrl":"https://example.com","shortCode":"legacy","source":"bitly"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var payload struct {
		ShortURLs []struct {
			ShortCode string `json:"shortCode"`
		} `json:"shortUrls"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.ShortURLs, 1)
	require.Equal(t, "legacy", payload.ShortURLs[0].ShortCode)
}

func TestImportShortURLsConflictStaysConflict(t *testing.T) {
	svc, mux := newTestMux(t)
	expectAuth(svc)

	svc.EXPECT().Import(gomock.Any(), gomock.Any(), true).
		Return(nil, serrors.With(serrors.ErrConflict, "short code %q is already in use", "legacy"))

	rec := doJSON(mux, http.MethodPost, "/rest/v1/short-urls/import", "valid-key",
		`{"importShortCodes":true,"shortUrls":[{"longUrl":"https://example.com","shortCode":"legacy","source":"bitly"}]}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var payload struct {
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, http.StatusConflict, payload.Status)
	require.Contains(t, payload.Detail, "import failed after 0 records")
}

func TestRedirect(t *testing.T) {
	svc, mux := newTestMux(t)

	svc.EXPECT().Redirect(gomock.Any(),
		storage.ShortURLIdentifier{ShortCode: "abc12", Domain: "s.example.com"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ storage.ShortURLIdentifier, visit shortener.VisitContext) (string, error) {
			require.Equal(t, "some-agent", visit.UserAgent)

			return "https://example.com/target?ref=tw", nil
		})

	req := httptest.NewRequest(http.MethodGet, "http://s.example.com/abc12?ref=tw", nil)
	req.Header.Set("User-Agent", "some-agent")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "https://example.com/target?ref=tw", rec.Header().Get("Location"))
}

func TestRedirectFallsBackToDefaultDomain(t *testing.T) {
	svc, mux := newTestMux(t)

	svc.EXPECT().Redirect(gomock.Any(),
		storage.ShortURLIdentifier{ShortCode: "abc12", Domain: "other.example.com"}, gomock.Any()).
		Return("", serrors.With(serrors.ErrNotFound, "short url not found"))
	svc.EXPECT().Redirect(gomock.Any(),
		storage.ShortURLIdentifier{ShortCode: "abc12"}, gomock.Any()).
		Return("https://example.com/target", nil)

	req := httptest.NewRequest(http.MethodGet, "http://other.example.com/abc12", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
}

func TestRedirectGone(t *testing.T) {
	svc, mux := newTestMux(t)

	svc.EXPECT().Redirect(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", serrors.With(serrors.ErrGone, "short url is disabled"))

	req := httptest.NewRequest(http.MethodGet, "http://example.com/abc12", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusGone, rec.Code)
}
