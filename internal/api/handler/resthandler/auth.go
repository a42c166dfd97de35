package resthandler

import (
	"context"
	"net/http"

	"shortener/pkg/domain"
)

// apiKeyHeader is the header REST callers authenticate with.
const apiKeyHeader = "X-Api-Key" //nolint: gosec

type apiKeyContextKey struct{}

// WithAPIKey authenticates the request by its API key header and stores the
// resolved key on the context for handlers to credit.
func (h *Handler) WithAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, err := h.shortener.AuthenticateAPIKey(r.Context(), r.Header.Get(apiKeyHeader))
		if err != nil {
			writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), apiKeyContextKey{}, key)))
	})
}

// APIKeyFromContext returns the authenticated API key stored by WithAPIKey,
// or nil when the request was not authenticated.
func APIKeyFromContext(ctx context.Context) *domain.APIKey {
	key, _ := ctx.Value(apiKeyContextKey{}).(*domain.APIKey)

	return key
}
