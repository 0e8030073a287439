// Package core defines the domain types and pipeline interfaces for brandpipe.
// Each stage of the extraction pipeline is a clean, testable interface.
package core

import "github.com/PuerkitoBio/goquery"

// PageSample holds one fetched page and its parse handle.
// When Err is non-nil the fetch failed and HTML/Doc are empty; the sample
// stays in the snapshot so callers can report what was attempted.
type PageSample struct {
	URL      string
	FinalURL string
	HTML     string
	Doc      *goquery.Document
	Err      error
}

// Ok reports whether the page was fetched and parsed successfully.
func (p *PageSample) Ok() bool {
	return p != nil && p.Err == nil && p.Doc != nil
}

// Stylesheet is the body of one fetched external stylesheet.
type Stylesheet struct {
	URL  string
	Body string
}

// SiteSnapshot is everything the fetcher gathered for one seed URL:
// the seed page, a bounded set of internal pages, and the non-CDN
// stylesheets linked from them.
type SiteSnapshot struct {
	Seed        *PageSample
	Internal    []*PageSample
	Stylesheets []Stylesheet
}

// Pages returns the seed plus every successfully fetched internal page.
func (s *SiteSnapshot) Pages() []*PageSample {
	var pages []*PageSample
	if s.Seed.Ok() {
		pages = append(pages, s.Seed)
	}
	for _, p := range s.Internal {
		if p.Ok() {
			pages = append(pages, p)
		}
	}
	return pages
}

// Structural weights for color candidates. A higher weight means the
// color came from a more authoritative location on the page.
const (
	WeightHero = 5 // header, nav, or hero region
	WeightRoot = 3 // :root custom property
	WeightBody = 1 // anywhere else
)

// ColorCandidate is a hex-normalized color signal prior to fusion.
type ColorCandidate struct {
	Hex    string // "#RRGGBB", uppercase
	Weight int
}

// Font candidate sources.
const (
	FontSourceCSS        = "css"
	FontSourceGoogleLink = "google-fonts-link"
	FontSourceAI         = "ai-inferred"
)

// FontCandidate is a font-family signal prior to fusion.
type FontCandidate struct {
	Family string
	Source string
}

// ColorPalette holds the resolved color roles. Secondary and Accent may
// be empty; Primary, Background, and Text are always valid 6-digit hex.
type ColorPalette struct {
	Primary    string   `json:"primary"`
	Secondary  string   `json:"secondary,omitempty"`
	Accent     string   `json:"accent,omitempty"`
	Background string   `json:"background"`
	Text       string   `json:"text"`
	AllColors  []string `json:"all_colors,omitempty"`
}

// FontInfo is one resolved font with its role flags.
type FontInfo struct {
	Family    string `json:"family"`
	Style     string `json:"style,omitempty"`
	Source    string `json:"source,omitempty"`
	IsPrimary bool   `json:"is_primary"`
	IsBody    bool   `json:"is_body"`
}

// FontSet is the resolved fonts, heading font first. Never empty.
type FontSet []FontInfo

// LogoAsset is a resolved logo URL with inferred format.
type LogoAsset struct {
	URL    string `json:"url"`
	Format string `json:"format"`
	IsSVG  bool   `json:"is_svg"`
}

// BrandStrategy is the AI-synthesized content strategy. All list fields
// are plain strings; the enrichment adapter normalizes any structured
// items before they reach this type.
type BrandStrategy struct {
	Archetype            string   `json:"brand_archetype"`
	Voice                string   `json:"brand_voice"`
	ContentPillars       []string `json:"content_pillars"`
	VisualStyleGuide     []string `json:"visual_style_guide"`
	RecommendedPostTypes []string `json:"recommended_post_types"`
	CampaignIdeas        []string `json:"campaign_ideas"`
	TargetAudience       string   `json:"target_audience"`
	KeyStrengths         []string `json:"key_strengths"`
	DesignStyle          string   `json:"design_style"`
}

// BrandProfile is the aggregate result of one extraction run. It is
// assembled once by the orchestrator and never mutated afterwards.
type BrandProfile struct {
	WebsiteURL      string         `json:"website_url"`
	CompanyName     string         `json:"company_name"`
	Summary         string         `json:"company_summary"`
	Colors          ColorPalette   `json:"colors"`
	Fonts           FontSet        `json:"fonts"`
	Logo            *LogoAsset     `json:"logo,omitempty"`
	FaviconURL      string         `json:"favicon_url,omitempty"`
	MetaDescription string         `json:"meta_description,omitempty"`
	ExtractedAt     string         `json:"extraction_timestamp"` // RFC3339
	VibeKeywords    []string       `json:"brand_vibe,omitempty"`
	Strategy        *BrandStrategy `json:"strategy,omitempty"`
	PagesAnalyzed   []string       `json:"pages_analyzed,omitempty"`
}

// PostDraft is one social-media post draft derived from a profile.
type PostDraft struct {
	Day         string `json:"day"`
	PostType    string `json:"post_type"`
	Caption     string `json:"caption"`
	ImagePrompt string `json:"image_prompt"`
}
