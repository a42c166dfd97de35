package controller

import (
	"net/http"
	"regexp"
	"strings"
)

// restPrefix is the path prefix under which the REST API is served.
const restPrefix = "/rest"

// DefaultRestVersion is the version segment inserted into REST paths that
// carry none.
const DefaultRestVersion = "v1"

// versionedRestPath matches REST paths that already carry a version segment,
// e.g. /rest/v1/short-urls or /rest/v2.
var versionedRestPath = regexp.MustCompile(`^/rest/v\d+(/.*)?$`)

// WithRestVersion returns a middleware that rewrites inbound /rest paths
// lacking a version segment to the default version, so /rest/short-urls is
// routed as /rest/v1/short-urls. Already-versioned REST paths and paths
// outside /rest pass through unchanged. All path segments after the prefix
// are preserved.
func WithRestVersion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if strings.HasPrefix(p, restPrefix) && !versionedRestPath.MatchString(p) {
			rest := strings.TrimPrefix(p, restPrefix)
			if rest != "" && !strings.HasPrefix(rest, "/") {
				// e.g. /restaurant: not a REST path at all
				next.ServeHTTP(w, r)

				return
			}

			r.URL.Path = restPrefix + "/" + DefaultRestVersion + rest
			r.URL.RawPath = ""
		}

		next.ServeHTTP(w, r)
	})
}
