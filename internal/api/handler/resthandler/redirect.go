package resthandler

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"shortener/internal/shortener"
	"shortener/pkg/controller"
	"shortener/pkg/serrors"
	"shortener/pkg/storage"
)

// RedirectShortURL handles GET /{shortCode}: it resolves the code scoped to
// the request's host, falling back to the default domain, records the visit
// and issues the redirect.
func (h *Handler) RedirectShortURL(w http.ResponseWriter, r *http.Request) {
	visit := shortener.VisitContext{
		RemoteAddr: controller.GetClientIP(r),
		UserAgent:  r.UserAgent(),
		Referer:    r.Referer(),
		Query:      r.URL.Query(),
	}

	code := r.PathValue("shortCode")
	target, err := h.shortener.Redirect(r.Context(),
		storage.ShortURLIdentifier{ShortCode: code, Domain: requestAuthority(r)}, visit)
	if errors.Is(err, serrors.ErrNotFound) {
		// codes not registered under the request's host live on the
		// default domain
		target, err = h.shortener.Redirect(r.Context(),
			storage.ShortURLIdentifier{ShortCode: code}, visit)
	}
	if err != nil {
		writeError(w, r, err)

		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// requestAuthority extracts the host the client addressed, without the port.
func requestAuthority(r *http.Request) string {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	return strings.ToLower(host)
}
