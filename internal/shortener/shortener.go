package shortener

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"shortener/internal/config"
	"shortener/pkg/domain"
	"shortener/pkg/logger"
	"shortener/pkg/metrics"
	"shortener/pkg/serrors"
	"shortener/pkg/storage"

	"go.uber.org/zap"
)

// Options configure short-code generation and title auto-resolution.
// These settings are typically derived from application configuration.
type Options struct {
	// DefaultDomain is the authority served by the default domain scope.
	// Identifiers carrying it are folded into the default scope, so a short
	// URL created without a domain resolves under it.
	DefaultDomain string
	// ShortCodeLength is the length used for generated codes when a creation
	// request does not specify one.
	ShortCodeLength int
	// MaxGenerateRetries bounds how many times a colliding generated code is
	// regenerated before giving up with a conflict.
	MaxGenerateRetries int
	// AutoResolveTitles enables enqueueing a background title-resolution job
	// for short URLs created without a title.
	AutoResolveTitles bool
	// ValidateURLTimeout bounds the reachability check of a long URL when a
	// creation request asks for it.
	ValidateURLTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultDomain:      cfg.Shortener.DefaultDomain,
		ShortCodeLength:    cfg.Shortener.ShortCodeLength,
		MaxGenerateRetries: cfg.Shortener.MaxGenerateRetries,
		AutoResolveTitles:  cfg.Shortener.AutoResolveTitles,
		ValidateURLTimeout: cfg.Shortener.ValidateURLTimeout,
	}
}

// shortener is the concrete implementation of the Shortener interface.
// It coordinates the domain aggregate with the storage layer and job queue.
type shortener struct {
	// options holds runtime configuration affecting creation and jobs.
	options Options
	// storage is the persistence layer.
	storage storage.Storage
	// generator produces short codes. Tests inject a deterministic one.
	generator domain.ShortCodeGenerator
	// validateClient performs long-URL reachability checks on creation.
	validateClient *http.Client
}

// New creates a new Shortener backed by the provided storage, using the given
// short-code generator (the nanoid default when nil) and options.
func New(strg storage.Storage, generator domain.ShortCodeGenerator, options Options) Shortener {
	if generator == nil {
		generator = domain.NanoIDGenerator{}
	}
	if options.MaxGenerateRetries <= 0 {
		options.MaxGenerateRetries = 5
	}
	if options.ValidateURLTimeout <= 0 {
		options.ValidateURLTimeout = 5 * time.Second
	}

	return &shortener{
		options:        options,
		storage:        strg,
		generator:      generator,
		validateClient: &http.Client{Timeout: options.ValidateURLTimeout},
	}
}

// normalizeIdentifier folds the configured default domain into the default
// scope, so requests arriving on it resolve the same rows as requests with
// no domain at all.
func (s *shortener) normalizeIdentifier(ident storage.ShortURLIdentifier) storage.ShortURLIdentifier {
	if s.options.DefaultDomain != "" && ident.Domain == s.options.DefaultDomain {
		ident.Domain = ""
	}

	return ident
}

// validateCreation rejects malformed creation input before it reaches the
// aggregate. The entity itself records values verbatim.
func validateCreation(input domain.ShortURLCreation) error {
	if input.LongURL == "" {
		return serrors.With(serrors.ErrBadRequest, "longUrl is required")
	}
	if _, err := url.ParseRequestURI(input.LongURL); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid longUrl")
	}
	if input.MaxVisits != nil && *input.MaxVisits < 0 {
		return serrors.With(serrors.ErrBadRequest, "maxVisits cannot be negative")
	}
	if input.ValidSince != nil && input.ValidUntil != nil && input.ValidUntil.Before(*input.ValidSince) {
		return serrors.With(serrors.ErrBadRequest, "validUntil cannot precede validSince")
	}
	if input.CustomSlug != nil && strings.TrimSpace(*input.CustomSlug) == "" {
		return serrors.With(serrors.ErrBadRequest, "customSlug cannot be empty")
	}

	return nil
}

// verifyLongURL checks that the long URL actually resolves. Only runs when a
// creation request asks for it.
func (s *shortener) verifyLongURL(ctx context.Context, longURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, longURL, nil)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid longUrl")
	}

	resp, err := s.validateClient.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "longUrl is not reachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return serrors.With(serrors.ErrBadRequest,
			"longUrl responded with status %d", resp.StatusCode)
	}

	return nil
}

// Create builds the aggregate inside a transaction and persists it, retrying
// with a regenerated code when the generated one collides. Each attempt runs
// in its own transaction so a failed insert never poisons the retry.
func (s *shortener) Create(ctx context.Context, input domain.ShortURLCreation) (*domain.ShortURL, error) {
	if err := validateCreation(input); err != nil {
		return nil, err
	}
	if input.ValidateURL {
		if err := s.verifyLongURL(ctx, input.LongURL); err != nil {
			return nil, err
		}
	}
	if s.options.DefaultDomain != "" && input.Domain == s.options.DefaultDomain {
		input.Domain = ""
	}
	if input.ShortCodeLength <= 0 {
		input.ShortCodeLength = s.options.ShortCodeLength
	}

	su, err := domain.NewShortURL(ctx, input, domain.SimpleRelationResolver{}, s.generator)
	if err != nil {
		return nil, fmt.Errorf("could not build short url: %w", err)
	}

	return s.storeWithRetry(ctx, su)
}

// Import persists an externally-sourced record. Import data is trusted, so
// only the minimal shape is checked here.
func (s *shortener) Import(ctx context.Context,
	imported domain.ImportedShortURL,
	importShortCode bool) (*domain.ShortURL, error) {
	if imported.LongURL == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "longUrl is required")
	}
	if imported.Source == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "source is required")
	}

	su, err := domain.FromImport(ctx, imported, importShortCode, domain.SimpleRelationResolver{}, s.generator)
	if err != nil {
		return nil, fmt.Errorf("could not build short url from import: %w", err)
	}

	return s.storeWithRetry(ctx, su)
}

// storeWithRetry inserts the aggregate, regenerating the short code and
// retrying on collisions. Caller-chosen slugs cannot be regenerated, so their
// collisions surface as conflicts immediately.
func (s *shortener) storeWithRetry(ctx context.Context, su *domain.ShortURL) (*domain.ShortURL, error) {
	var stored *domain.ShortURL

	for attempt := 0; attempt < s.options.MaxGenerateRetries; attempt++ {
		err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			res, err := tx.StoreShortURL(ctx, su)
			if err != nil {
				return err //nolint: wrapcheck
			}
			stored = res

			if s.options.AutoResolveTitles && stored.Title() == nil {
				if _, err := tx.AddJob(ctx, TitleJobArgs{ShortURLID: uuid.UUID(stored.ID())}, nil); err != nil {
					return fmt.Errorf("could not add title resolution job: %w", err)
				}
			}

			return nil
		})
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, storage.ErrShortCodeInUse) {
			return nil, fmt.Errorf("could not store short url: %w", err)
		}

		if regenErr := su.RegenerateShortCode(s.generator); regenErr != nil {
			return nil, serrors.Wrap(serrors.ErrConflict, regenErr, "short code %q is already in use", su.ShortCode())
		}

		logger.Info(ctx, "short code collision, retrying with a fresh code",
			zap.Int("attempt", attempt+1))
	}

	return nil, serrors.With(serrors.ErrConflict,
		"could not find a free short code after %d attempts", s.options.MaxGenerateRetries)
}

// ShortURL fetches a single short URL with relations and visits.
func (s *shortener) ShortURL(ctx context.Context, ident storage.ShortURLIdentifier) (*domain.ShortURL, error) {
	su, err := s.storage.ShortURLByIdentifier(ctx, s.normalizeIdentifier(ident))
	if err != nil {
		return nil, fmt.Errorf("could not get short url: %w", err)
	}
	if su == nil {
		return nil, serrors.With(serrors.ErrNotFound, "short url not found")
	}

	return su, nil
}

// ShortURLs returns a page of short URLs. The cursor is an RFC3339 timestamp
// produced by a previous page.
func (s *shortener) ShortURLs(ctx context.Context, cursor string, limit uint) ([]*domain.ShortURL, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.ShortURLs(ctx, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not list short urls: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.ShortURLs, next, nil
}

// Edit loads the aggregate under a row lock, applies the partial update
// through it and persists the result in the same transaction, so concurrent
// writers serialize on the row instead of clobbering each other.
func (s *shortener) Edit(ctx context.Context,
	ident storage.ShortURLIdentifier,
	edit domain.ShortURLEdit) (*domain.ShortURL, error) {
	if v, ok := edit.MaxVisits.Get(); ok && v != nil && *v < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "maxVisits cannot be negative")
	}

	ident = s.normalizeIdentifier(ident)

	var updated *domain.ShortURL
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		su, err := tx.ShortURLByIdentifierForUpdate(ctx, ident)
		if err != nil {
			return fmt.Errorf("could not get short url: %w", err)
		}
		if su == nil {
			return serrors.With(serrors.ErrNotFound, "short url not found")
		}

		if err := su.Update(ctx, edit, storage.NewPersistentRelationResolver(tx)); err != nil {
			return fmt.Errorf("could not apply edit: %w", err)
		}

		if err := tx.UpdateShortURL(ctx, su); err != nil {
			return fmt.Errorf("could not update short url: %w", err)
		}
		updated = su

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return updated, nil
}

// Delete removes a short URL and its visit ledger.
func (s *shortener) Delete(ctx context.Context, ident storage.ShortURLIdentifier) error {
	deleted, err := s.storage.DeleteShortURL(ctx, s.normalizeIdentifier(ident))
	if err != nil {
		return fmt.Errorf("could not delete short url: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "short url not found")
	}

	return nil
}

// Redirect resolves a short URL for visiting. Disabled URLs (quota exhausted
// or outside the validity window) are reported as gone; enabled ones get a
// visit recorded and the target URL built with query forwarding applied.
func (s *shortener) Redirect(ctx context.Context,
	ident storage.ShortURLIdentifier,
	visit VisitContext) (string, error) {
	su, err := s.storage.ShortURLByIdentifier(ctx, s.normalizeIdentifier(ident))
	if err != nil {
		return "", fmt.Errorf("could not get short url: %w", err)
	}
	if su == nil {
		metrics.RedirectsTotal.WithLabelValues("not_found").Inc()

		return "", serrors.With(serrors.ErrNotFound, "short url not found")
	}
	if !su.IsEnabled() {
		metrics.RedirectsTotal.WithLabelValues("disabled").Inc()

		return "", serrors.With(serrors.ErrGone, "short url is disabled")
	}

	potentialBot := looksLikeBot(visit.UserAgent)
	if _, err := s.storage.StoreVisit(ctx, domain.Visit{
		ShortURLID:   su.ID(),
		Date:         time.Now(),
		PotentialBot: potentialBot,
		Type:         domain.VisitTypeNormal,
		RemoteAddr:   visit.RemoteAddr,
		UserAgent:    visit.UserAgent,
		Referer:      visit.Referer,
	}); err != nil {
		// losing a visit should not lose the redirect
		logger.Error(ctx, "could not record visit", zap.Error(err))
	} else {
		metrics.VisitsRecordedTotal.WithLabelValues(strconv.FormatBool(potentialBot)).Inc()
	}

	target, err := buildTargetURL(su, visit.Query)
	if err != nil {
		return "", err
	}
	metrics.RedirectsTotal.WithLabelValues("redirected").Inc()

	return target, nil
}

// AuthenticateAPIKey resolves a key secret to an enabled API key.
func (s *shortener) AuthenticateAPIKey(ctx context.Context, key string) (*domain.APIKey, error) {
	if key == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "missing api key")
	}

	k, err := s.storage.APIKeyByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("could not get api key: %w", err)
	}
	if k == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid api key")
	}
	if !k.Enabled {
		return nil, serrors.With(serrors.ErrForbidden, "api key is disabled")
	}

	return k, nil
}

// buildTargetURL returns the long URL, merging the short URL's query params
// into it when query forwarding is on. Params arriving on the short URL win
// over params already present on the long URL.
func buildTargetURL(su *domain.ShortURL, query url.Values) (string, error) {
	if !su.ForwardQuery() || len(query) == 0 {
		return su.LongURL(), nil
	}

	target, err := url.Parse(su.LongURL())
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "stored long url is not parseable")
	}

	merged := target.Query()
	for k, vs := range query {
		merged[k] = vs
	}
	target.RawQuery = merged.Encode()

	return target.String(), nil
}

// botUAFragments are user-agent substrings that mark a visit as a potential
// bot. Matching is case-insensitive.
var botUAFragments = []string{"bot", "crawler", "spider", "preview", "curl/", "wget/"} //nolint: gochecknoglobals

func looksLikeBot(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, fragment := range botUAFragments {
		if strings.Contains(ua, fragment) {
			return true
		}
	}

	return false
}
