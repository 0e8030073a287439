package fetch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/gaurav-prasanna/brandpipe/core"
	"github.com/gaurav-prasanna/brandpipe/core/signals"
	"github.com/gaurav-prasanna/brandpipe/crawl"
	"github.com/gaurav-prasanna/brandpipe/logger"
)

const (
	defaultMaxInternalPages  = 4
	defaultMaxSheetsPerPage  = 3
	defaultStylesheetTimeout = 5 * time.Second
	maxConcurrentFetches     = 8
)

// Options configures a SiteFetcher. Zero values select the defaults.
type Options struct {
	PageTimeout           time.Duration
	StylesheetTimeout     time.Duration
	MaxInternalPages      int
	MaxStylesheetsPerPage int
	UserAgent             string
	Logger                logger.Interface
}

// SiteFetcher gathers the seed page, a bounded set of internal pages,
// and their non-CDN stylesheets. Only a failed seed fetch is fatal;
// every other resource fails in isolation.
type SiteFetcher struct {
	pages     core.Fetcher
	sheets    core.Fetcher
	maxPages  int
	maxSheets int
	log       logger.Interface
}

// NewSite creates a SiteFetcher.
func NewSite(opts Options) *SiteFetcher {
	if opts.MaxInternalPages == 0 {
		opts.MaxInternalPages = defaultMaxInternalPages
	}
	if opts.MaxStylesheetsPerPage == 0 {
		opts.MaxStylesheetsPerPage = defaultMaxSheetsPerPage
	}
	if opts.StylesheetTimeout <= 0 {
		opts.StylesheetTimeout = defaultStylesheetTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	return &SiteFetcher{
		pages:     NewHTTP(opts.PageTimeout, opts.UserAgent),
		sheets:    NewHTTP(opts.StylesheetTimeout, opts.UserAgent),
		maxPages:  opts.MaxInternalPages,
		maxSheets: opts.MaxStylesheetsPerPage,
		log:       opts.Logger,
	}
}

// FetchSite fetches the seed page and, from its links alone, up to
// maxPages internal pages plus their stylesheets, all concurrently.
// Normalization guarantees the same logical page is fetched once even
// through redirects.
func (s *SiteFetcher) FetchSite(ctx context.Context, seedURL string) (*core.SiteSnapshot, error) {
	seedURL = crawl.EnsureScheme(strings.TrimSpace(seedURL))

	seed, err := s.fetchPage(ctx, seedURL)
	if err != nil {
		return nil, &core.FetchError{URL: seedURL, Err: err}
	}

	visited := map[string]bool{
		crawl.Normalize(seed.URL):      true,
		crawl.Normalize(seed.FinalURL): true,
	}

	// Internal links come from the seed page only; deeper pages never
	// extend the crawl.
	links := crawl.DiscoverInternal(seed.Doc, seed.FinalURL, visited, s.maxPages)
	for _, link := range links {
		visited[crawl.Normalize(link)] = true
	}

	snapshot := &core.SiteSnapshot{
		Seed:     seed,
		Internal: make([]*core.PageSample, len(links)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, link := range links {
		g.Go(func() error {
			page, err := s.fetchPage(gctx, link)
			if err != nil {
				s.log.Warn("internal page skipped", "url", link, "error", err)
				snapshot.Internal[i] = &core.PageSample{URL: link, Err: classify(err)}
				return nil
			}
			snapshot.Internal[i] = page
			return nil
		})
	}
	_ = g.Wait()

	snapshot.Stylesheets = s.fetchStylesheets(ctx, snapshot.Pages())
	return snapshot, nil
}

// fetchPage retrieves and parses one HTML page.
func (s *SiteFetcher) fetchPage(ctx context.Context, pageURL string) (*core.PageSample, error) {
	result, err := s.pages.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if ct := result.ContentType; ct != "" && !strings.Contains(ct, "text/html") {
		return nil, fmt.Errorf("non-HTML content type %q for %s", ct, pageURL)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", core.ErrParse, pageURL, err)
	}
	return &core.PageSample{
		URL:      result.URL,
		FinalURL: result.FinalURL,
		HTML:     result.HTML,
		Doc:      doc,
	}, nil
}

// fetchStylesheets collects up to maxSheets stylesheet links per page,
// skipping CDN boilerplate, and fetches the distinct set concurrently.
// Failures and timeouts exclude the sheet, nothing more.
func (s *SiteFetcher) fetchStylesheets(ctx context.Context, pages []*core.PageSample) []core.Stylesheet {
	seen := make(map[string]bool)
	var sheetURLs []string
	for _, page := range pages {
		count := 0
		page.Doc.Find(`link[rel="stylesheet"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			href, ok := sel.Attr("href")
			if !ok || href == "" || signals.IsCDNStylesheet(href) {
				return true
			}
			resolved := signals.AbsURL(page.FinalURL, href)
			if resolved == "" {
				return true
			}
			norm := crawl.Normalize(resolved)
			if seen[norm] {
				return true
			}
			seen[norm] = true
			sheetURLs = append(sheetURLs, resolved)
			count++
			return count < s.maxSheets
		})
	}

	results := make([]core.Stylesheet, len(sheetURLs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, sheetURL := range sheetURLs {
		g.Go(func() error {
			res, err := s.sheets.Fetch(gctx, sheetURL)
			if err != nil {
				s.log.Warn("stylesheet skipped", "url", sheetURL, "error", err)
				return nil
			}
			results[i] = core.Stylesheet{URL: sheetURL, Body: res.HTML}
			return nil
		})
	}
	_ = g.Wait()

	var sheets []core.Stylesheet
	for _, sheet := range results {
		if sheet.URL != "" {
			sheets = append(sheets, sheet)
		}
	}
	return sheets
}

// classify maps transport errors onto the pipeline's error taxonomy.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", core.ErrResourceTimeout, err)
	}
	return err
}
