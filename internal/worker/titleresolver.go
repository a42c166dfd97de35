package worker

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"shortener/internal/shortener"
	"shortener/pkg/domain"
	"shortener/pkg/logger"
	"shortener/pkg/metrics"
	"shortener/pkg/storage"
)

// maxTitleBody bounds how much of the target page is read when looking for
// its title.
const maxTitleBody = 64 << 10

var titlePattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// TitleResolverWorker is a River worker that resolves the page title of a
// freshly created short URL. The fetched title is applied through the
// aggregate's update path flagged as a system guess, so it fills an empty
// title or replaces an earlier guess but never overrides a caller-chosen one.
type TitleResolverWorker struct {
	river.WorkerDefaults[shortener.TitleJobArgs]

	// storage is the persistence layer used to load and update the short URL.
	storage storage.Storage
	// client fetches the target page. Its timeout bounds a single resolution.
	client *http.Client
}

// NewTitleResolverWorker constructs a TitleResolverWorker using the provided
// storage and HTTP client.
func NewTitleResolverWorker(strg storage.Storage, client *http.Client) *TitleResolverWorker {
	if client == nil {
		client = http.DefaultClient
	}

	return &TitleResolverWorker{
		storage: strg,
		client:  client,
	}
}

// Work resolves the title for a single short URL. Jobs for short URLs that
// disappeared or already carry a caller-chosen title are canceled rather than
// retried; fetch failures are retried by River.
func (w *TitleResolverWorker) Work(ctx context.Context, job *river.Job[shortener.TitleJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("shortUrlId", job.Args.ShortURLID.String()))

	su, err := w.storage.ShortURLByID(ctx, domain.ShortURLID(job.Args.ShortURLID))
	if err != nil {
		return fmt.Errorf("could not get short url: %w", err)
	}
	if su == nil {
		metrics.TitleResolutionsTotal.WithLabelValues("skipped").Inc()

		return river.JobCancel(fmt.Errorf("short url %s no longer exists", job.Args.ShortURLID)) //nolint: wrapcheck
	}
	if su.Title() != nil && !su.TitleWasAutoResolved() {
		metrics.TitleResolutionsTotal.WithLabelValues("skipped").Inc()

		return river.JobCancel(fmt.Errorf("short url %s already has a title", job.Args.ShortURLID)) //nolint: wrapcheck
	}

	title, err := w.fetchTitle(ctx, su.LongURL())
	if err != nil {
		metrics.TitleResolutionsTotal.WithLabelValues("failed").Inc()
		logger.Error(ctx, "could not fetch page title", zap.Error(err))

		return fmt.Errorf("could not fetch page title: %w", err)
	}
	if title == "" {
		metrics.TitleResolutionsTotal.WithLabelValues("skipped").Inc()
		logger.Info(ctx, "page has no usable title")

		return nil
	}

	// the fetch took time; re-load under a row lock and re-check precedence
	// so a caller title that landed meanwhile is never overwritten
	var applied bool
	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		su, err := tx.ShortURLByIDForUpdate(ctx, domain.ShortURLID(job.Args.ShortURLID))
		if err != nil {
			return fmt.Errorf("could not get short url: %w", err)
		}
		if su == nil || (su.Title() != nil && !su.TitleWasAutoResolved()) {
			return nil
		}

		edit := domain.ShortURLEdit{
			Title:                domain.NewField(&title),
			TitleWasAutoResolved: true,
		}
		if err := su.Update(ctx, edit, nil); err != nil {
			return fmt.Errorf("could not apply title edit: %w", err)
		}
		if err := tx.UpdateShortURL(ctx, su); err != nil {
			return fmt.Errorf("could not update short url: %w", err)
		}
		applied = true

		return nil
	}); err != nil {
		return err //nolint: wrapcheck
	}

	if !applied {
		metrics.TitleResolutionsTotal.WithLabelValues("skipped").Inc()
		logger.Info(ctx, "short url changed while resolving, keeping its title")

		return nil
	}

	metrics.TitleResolutionsTotal.WithLabelValues("resolved").Inc()
	logger.Info(ctx, "resolved page title", zap.String("title", title))

	return nil
}

// fetchTitle downloads the beginning of the page and extracts its <title>.
// An empty result means the page had none.
func (w *TitleResolverWorker) fetchTitle(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("could not build request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not fetch page: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("page returned status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "html") {
		return "", nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTitleBody))
	if err != nil {
		return "", fmt.Errorf("could not read page body: %w", err)
	}

	m := titlePattern.FindSubmatch(body)
	if m == nil {
		return "", nil
	}

	return strings.TrimSpace(html.UnescapeString(strings.Join(strings.Fields(string(m[1])), " "))), nil
}
