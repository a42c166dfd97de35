package resthandler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/samber/lo"

	"shortener/pkg/domain"
	"shortener/pkg/serrors"
	"shortener/pkg/storage"
)

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

// Register wires the REST routes onto the mux. Paths are the versioned form;
// the surrounding server rewrites unversioned /rest paths to them.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.Handle("POST /rest/v1/short-urls", h.WithAPIKey(http.HandlerFunc(h.CreateShortURL)))
	mux.Handle("POST /rest/v1/short-urls/import", h.WithAPIKey(http.HandlerFunc(h.ImportShortURLs)))
	mux.Handle("GET /rest/v1/short-urls", h.WithAPIKey(http.HandlerFunc(h.ListShortURLs)))
	mux.Handle("GET /rest/v1/short-urls/{shortCode}", h.WithAPIKey(http.HandlerFunc(h.GetShortURL)))
	mux.Handle("PATCH /rest/v1/short-urls/{shortCode}", h.WithAPIKey(http.HandlerFunc(h.EditShortURL)))
	mux.Handle("DELETE /rest/v1/short-urls/{shortCode}", h.WithAPIKey(http.HandlerFunc(h.DeleteShortURL)))
}

// shortURLPayload is the JSON representation of a short URL.
type shortURLPayload struct {
	ShortCode    string              `json:"shortCode"`
	LongURL      string              `json:"longUrl"`
	DateCreated  time.Time           `json:"dateCreated"`
	Tags         []string            `json:"tags"`
	Domain       *string             `json:"domain"`
	Title        *string             `json:"title"`
	Crawlable    bool                `json:"crawlable"`
	ForwardQuery bool                `json:"forwardQuery"`
	Meta         shortURLMetaPayload `json:"meta"`
	Visits       visitsSummary       `json:"visitsSummary"`
}

type shortURLMetaPayload struct {
	ValidSince *time.Time `json:"validSince"`
	ValidUntil *time.Time `json:"validUntil"`
	MaxVisits  *int       `json:"maxVisits"`
}

type visitsSummary struct {
	Total   int `json:"total"`
	NonBots int `json:"nonBots"`
	Bots    int `json:"bots"`
}

func toPayload(su *domain.ShortURL) shortURLPayload {
	var authority *string
	if su.Domain() != nil {
		a := su.Domain().Authority
		authority = &a
	}

	total := su.VisitsCount()
	nonBots := su.NonBotVisitsCount()

	return shortURLPayload{
		ShortCode:    su.ShortCode(),
		LongURL:      su.LongURL(),
		DateCreated:  su.DateCreated(),
		Tags: lo.Map(su.Tags(), func(t domain.Tag, _ int) string {
			return t.Name
		}),
		Domain:       authority,
		Title:        su.Title(),
		Crawlable:    su.Crawlable(),
		ForwardQuery: su.ForwardQuery(),
		Meta: shortURLMetaPayload{
			ValidSince: su.ValidSince(),
			ValidUntil: su.ValidUntil(),
			MaxVisits:  su.MaxVisits(),
		},
		Visits: visitsSummary{
			Total:   total,
			NonBots: nonBots,
			Bots:    total - nonBots,
		},
	}
}

// identFromRequest addresses a short URL by the path's shortCode and the
// optional domain query param.
func identFromRequest(r *http.Request) storage.ShortURLIdentifier {
	return storage.ShortURLIdentifier{
		ShortCode: r.PathValue("shortCode"),
		Domain:    r.URL.Query().Get("domain"),
	}
}

type createShortURLRequest struct {
	LongURL         string     `json:"longUrl"`
	Domain          string     `json:"domain,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	Title           *string    `json:"title,omitempty"`
	ValidSince      *time.Time `json:"validSince,omitempty"`
	ValidUntil      *time.Time `json:"validUntil,omitempty"`
	MaxVisits       *int       `json:"maxVisits,omitempty"`
	CustomSlug      *string    `json:"customSlug,omitempty"`
	ShortCodeLength int        `json:"shortCodeLength,omitempty"`
	Crawlable       bool       `json:"crawlable,omitempty"`
	ForwardQuery    *bool      `json:"forwardQuery,omitempty"`
	ValidateURL     bool       `json:"validateUrl,omitempty"`
}

// CreateShortURL handles POST /rest/v1/short-urls.
func (h *Handler) CreateShortURL(w http.ResponseWriter, r *http.Request) {
	var req createShortURLRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	su, err := h.shortener.Create(r.Context(), domain.ShortURLCreation{
		LongURL:         req.LongURL,
		Domain:          req.Domain,
		Tags:            req.Tags,
		Title:           req.Title,
		ValidSince:      req.ValidSince,
		ValidUntil:      req.ValidUntil,
		MaxVisits:       req.MaxVisits,
		CustomSlug:      req.CustomSlug,
		ShortCodeLength: req.ShortCodeLength,
		Crawlable:       req.Crawlable,
		ForwardQuery:    req.ForwardQuery,
		AuthorAPIKey:    APIKeyFromContext(r.Context()),
		ValidateURL:     req.ValidateURL,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, toPayload(su))
}

type importShortURLsRequest struct {
	ShortURLs        []domain.ImportedShortURL `json:"shortUrls"`
	ImportShortCodes bool                      `json:"importShortCodes"`
}

// ImportShortURLs handles POST /rest/v1/short-urls/import. Records import
// one by one; the first failure aborts and reports how far it got.
func (h *Handler) ImportShortURLs(w http.ResponseWriter, r *http.Request) {
	var req importShortURLsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}
	if len(req.ShortURLs) == 0 {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "shortUrls cannot be empty"))

		return
	}

	imported := make([]shortURLPayload, 0, len(req.ShortURLs))
	for _, record := range req.ShortURLs {
		su, err := h.shortener.Import(r.Context(), record, req.ImportShortCodes)
		if err != nil {
			// wrap without forcing a kind so conflicts stay conflicts
			writeError(w, r, fmt.Errorf("import failed after %d records: %w", len(imported), err))

			return
		}
		imported = append(imported, toPayload(su))
	}

	writeJSON(w, r, http.StatusCreated, map[string]any{"shortUrls": imported})
}

// ListShortURLs handles GET /rest/v1/short-urls with cursor pagination.
func (h *Handler) ListShortURLs(w http.ResponseWriter, r *http.Request) {
	limit := uint(defaultPageSize)
	if raw := r.URL.Query().Get("itemsPerPage"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 || parsed > maxPageSize {
			writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid itemsPerPage"))

			return
		}
		limit = uint(parsed)
	}

	shortURLs, next, err := h.shortener.ShortURLs(r.Context(), r.URL.Query().Get("cursor"), limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	resp := map[string]any{
		"shortUrls": lo.Map(shortURLs, func(su *domain.ShortURL, _ int) shortURLPayload {
			return toPayload(su)
		}),
	}
	if next != "" {
		resp["nextCursor"] = next
	}

	writeJSON(w, r, http.StatusOK, resp)
}

// GetShortURL handles GET /rest/v1/short-urls/{shortCode}.
func (h *Handler) GetShortURL(w http.ResponseWriter, r *http.Request) {
	su, err := h.shortener.ShortURL(r.Context(), identFromRequest(r))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toPayload(su))
}

// EditShortURL handles PATCH /rest/v1/short-urls/{shortCode}. The body is a
// partial document: only keys present in it are touched.
func (h *Handler) EditShortURL(w http.ResponseWriter, r *http.Request) {
	var edit domain.ShortURLEdit
	if err := decodeJSON(r, &edit); err != nil {
		writeError(w, r, err)

		return
	}

	su, err := h.shortener.Edit(r.Context(), identFromRequest(r), edit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toPayload(su))
}

// DeleteShortURL handles DELETE /rest/v1/short-urls/{shortCode}.
func (h *Handler) DeleteShortURL(w http.ResponseWriter, r *http.Request) {
	if err := h.shortener.Delete(r.Context(), identFromRequest(r)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
