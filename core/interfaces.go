package core

import "context"

// FetchResult holds the raw HTML and response metadata from a single fetch.
type FetchResult struct {
	URL         string
	FinalURL    string // post-redirect URL
	StatusCode  int
	ContentType string
	HTML        string
}

// Fetcher retrieves a single resource over HTTP.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// SiteFetcher gathers the seed page, a bounded set of internal pages,
// and their stylesheets for one seed URL.
type SiteFetcher interface {
	FetchSite(ctx context.Context, seedURL string) (*SiteSnapshot, error)
}

// SynthesisRequest carries the deterministic signals handed to the AI
// synthesis capability. Hint fields are what the scrape already found;
// the synthesizer may extend them but never replaces them.
type SynthesisRequest struct {
	CompanyName string
	Description string
	PageText    string
	URL         string
	HintColors  []string
	HintFonts   []string
}

// Synthesis is the normalized AI enrichment result.
type Synthesis struct {
	Summary         string
	VibeKeywords    []string
	Strategy        *BrandStrategy
	SuggestedColors []string
	SuggestedFonts  []string
}

// Synthesizer is the AI enrichment capability. Implementations must
// return an error rather than panic on failure; the orchestrator treats
// any error as a degraded (deterministic-only) run.
type Synthesizer interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (*Synthesis, error)
}

// CaptionRequest asks the synthesis capability for one post caption.
type CaptionRequest struct {
	CompanyName string
	Summary     string
	PostType    string
	Pillar      string
	Voice       string
}

// Captioner writes a single social-post caption. Optional capability:
// content planning falls back to templated captions when the
// synthesizer does not implement it or the call fails.
type Captioner interface {
	Caption(ctx context.Context, req CaptionRequest) (string, error)
}

// ProfileRenderer converts a BrandProfile into an output format.
type ProfileRenderer interface {
	Render(profile *BrandProfile) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json", ".pdf").
	Extension() string
}
