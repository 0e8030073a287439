// Package pipeline orchestrates the extraction stages into a single run:
// fetch the site, mine deterministic signals, enrich with AI, and merge
// everything into a BrandProfile. A run always produces a profile; the
// worst failure mode is a degraded placeholder.
package pipeline

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gaurav-prasanna/brandpipe/core"
	"github.com/gaurav-prasanna/brandpipe/core/enrich"
	"github.com/gaurav-prasanna/brandpipe/core/fuse"
	"github.com/gaurav-prasanna/brandpipe/core/logo"
	"github.com/gaurav-prasanna/brandpipe/core/signals"
	"github.com/gaurav-prasanna/brandpipe/crawl"
	"github.com/gaurav-prasanna/brandpipe/logger"
)

// Run states, logged as each stage begins.
const (
	StateFetching   = "FETCHING"
	StateExtracting = "EXTRACTING"
	StateEnriching  = "ENRICHING"
	StateMerging    = "MERGING"
	StateDone       = "DONE"
	StateFailed     = "FAILED"
)

const textBudget = 3800

// Orchestrator drives one extraction run end to end.
type Orchestrator struct {
	fetcher core.SiteFetcher
	synth   core.Synthesizer
	log     logger.Interface
	now     func() time.Time
}

// New creates an Orchestrator. synth may be nil, in which case runs are
// deterministic-only.
func New(fetcher core.SiteFetcher, synth core.Synthesizer, log logger.Interface) *Orchestrator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Orchestrator{
		fetcher: fetcher,
		synth:   synth,
		log:     log,
		now:     time.Now,
	}
}

// pageSignals is what one page contributes before fusion.
type pageSignals struct {
	colors []core.ColorCandidate
	fonts  []core.FontCandidate
	text   []string
}

// Extract runs the full pipeline for one seed URL. It never returns an
// error: an unreachable seed yields a degraded placeholder profile, and
// a failed enrichment yields a deterministic-only profile.
func (o *Orchestrator) Extract(ctx context.Context, seedURL string) *core.BrandProfile {
	log := o.log.With("run", uuid.NewString()[:8], "url", seedURL)

	log.Info("run started", "state", StateFetching)
	snapshot, err := o.fetcher.FetchSite(ctx, seedURL)
	if err != nil {
		log.Error("seed unreachable", "state", StateFailed, "error", err)
		return o.degradedProfile(seedURL, err)
	}

	log.Info("site fetched", "state", StateExtracting,
		"pages", len(snapshot.Pages()), "stylesheets", len(snapshot.Stylesheets))

	seed := snapshot.Seed
	name := signals.CompanyName(seed.Doc)
	if name == "" {
		name = domainName(seed.FinalURL)
	}
	description := signals.Description(seed.Doc)
	favicon := signals.Favicon(seed.Doc, seed.FinalURL)
	logoAsset := logo.Resolve(seed.Doc, seed.FinalURL)

	pages := snapshot.Pages()
	perPage := make([]pageSignals, len(pages))
	g, _ := errgroup.WithContext(ctx)
	for i, page := range pages {
		g.Go(func() error {
			perPage[i] = pageSignals{
				colors: signals.PageColors(page.Doc),
				fonts:  signals.PageFonts(page.Doc),
				text:   signals.VisibleText(page.Doc),
			}
			return nil
		})
	}
	_ = g.Wait()

	var (
		colorCands []core.ColorCandidate
		fontCands  []core.FontCandidate
		fragments  []string
		analyzed   []string
	)
	for i, page := range pages {
		colorCands = append(colorCands, perPage[i].colors...)
		fontCands = append(fontCands, perPage[i].fonts...)
		fragments = append(fragments, perPage[i].text...)
		analyzed = append(analyzed, page.FinalURL)
	}
	for _, sheet := range snapshot.Stylesheets {
		c, f := signals.MineStylesheet(sheet.Body)
		colorCands = append(colorCands, c...)
		fontCands = append(fontCands, f...)
	}
	colorCands = signals.PromoteRootVars(colorCands)

	synthesis := o.enrich(ctx, log, core.SynthesisRequest{
		CompanyName: name,
		Description: description,
		PageText:    signals.Condense(fragments, textBudget),
		URL:         seed.FinalURL,
		HintColors:  topHexes(colorCands, 6),
		HintFonts:   topFamilies(fontCands, 4),
	})

	log.Info("merging signals", "state", StateMerging,
		"colors", len(colorCands), "fonts", len(fontCands))

	var aiColors, aiFonts []string
	strategy := enrich.DefaultStrategy()
	summary := description
	var vibe []string
	if synthesis != nil {
		aiColors = synthesis.SuggestedColors
		aiFonts = synthesis.SuggestedFonts
		vibe = synthesis.VibeKeywords
		if synthesis.Strategy != nil {
			strategy = synthesis.Strategy
		}
		if synthesis.Summary != "" {
			summary = synthesis.Summary
		}
	}
	if summary == "" {
		summary = "Analysis for " + name
	}
	for _, family := range aiFonts {
		if signals.IsValidFont(family) {
			fontCands = append(fontCands, core.FontCandidate{Family: family, Source: core.FontSourceAI})
		}
	}

	profile := &core.BrandProfile{
		WebsiteURL:      seed.FinalURL,
		CompanyName:     name,
		Summary:         summary,
		Colors:          fuse.BuildPalette(colorCands, aiColors),
		Fonts:           fuse.BuildFontSet(fontCands),
		Logo:            logoAsset,
		FaviconURL:      favicon,
		MetaDescription: description,
		ExtractedAt:     o.now().UTC().Format(time.RFC3339),
		VibeKeywords:    vibe,
		Strategy:        strategy,
		PagesAnalyzed:   analyzed,
	}

	log.Info("run finished", "state", StateDone, "company", name)
	return profile
}

// enrich calls the synthesizer if one is configured. Any failure is
// logged and surfaced as a nil synthesis.
func (o *Orchestrator) enrich(ctx context.Context, log logger.Interface, req core.SynthesisRequest) *core.Synthesis {
	if o.synth == nil {
		return nil
	}
	log.Info("enriching profile", "state", StateEnriching)
	synthesis, err := o.synth.Synthesize(ctx, req)
	if err != nil {
		log.Warn("enrichment unavailable, continuing without it", "error", err)
		return nil
	}
	return synthesis
}

// degradedProfile is the placeholder returned when the seed page cannot
// be fetched. Everything in it is derivable from the URL alone.
func (o *Orchestrator) degradedProfile(seedURL string, cause error) *core.BrandProfile {
	name := domainName(crawl.EnsureScheme(seedURL))
	return &core.BrandProfile{
		WebsiteURL:  seedURL,
		CompanyName: name,
		Summary:     "The website could not be reached: " + cause.Error(),
		Colors:      fuse.BuildPalette(nil, nil),
		Fonts:       fuse.BuildFontSet(nil),
		ExtractedAt: o.now().UTC().Format(time.RFC3339),
		Strategy:    enrich.DefaultStrategy(),
	}
}

// domainName turns "https://www.acme-corp.com/x" into "Acme Corp".
func domainName(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return rawURL
	}
	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	label, _, _ := strings.Cut(host, ".")
	words := strings.FieldsFunc(label, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = capitalize(w)
	}
	if len(words) == 0 {
		return host
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// topHexes returns up to n distinct hex values, preserving order.
func topHexes(cands []core.ColorCandidate, n int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range cands {
		if seen[c.Hex] {
			continue
		}
		seen[c.Hex] = true
		out = append(out, c.Hex)
		if len(out) == n {
			break
		}
	}
	return out
}

// topFamilies returns up to n distinct font families, preserving order.
func topFamilies(cands []core.FontCandidate, n int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range cands {
		key := strings.ToLower(c.Family)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c.Family)
		if len(out) == n {
			break
		}
	}
	return out
}
