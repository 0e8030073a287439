// Package enrich implements the AI enrichment capability against an
// Ollama-compatible generate API. Model selection is plain configuration
// injected at construction; nothing scans or ranks models at call time.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gaurav-prasanna/brandpipe/core"
)

const defaultTimeout = 60 * time.Second

// Config selects the endpoint and model for synthesis calls.
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client calls an Ollama-compatible generate endpoint and normalizes
// the response into core.Synthesis. It implements core.Synthesizer and
// core.Captioner.
type Client struct {
	cfg    Config
	client *http.Client
}

// New creates a Client from resolved configuration.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// generateRequest is the request body for the generate API.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse is the response body from the generate API.
type generateResponse struct {
	Response string `json:"response"`
}

// Synthesize runs the brand-analysis prompt and returns the normalized
// synthesis. Any transport, status, or schema failure is an error; the
// caller degrades to deterministic signals.
func (c *Client) Synthesize(ctx context.Context, req core.SynthesisRequest) (*core.Synthesis, error) {
	raw, err := c.generate(ctx, analysisPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrEnrichment, err)
	}
	syn, err := parseSynthesis(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrEnrichment, err)
	}
	return syn, nil
}

// Caption writes one social-post caption. Failures fall back to
// templated captions in the content planner.
func (c *Client) Caption(ctx context.Context, req core.CaptionRequest) (string, error) {
	raw, err := c.generate(ctx, captionPrompt(req))
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrEnrichment, err)
	}
	caption := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), `"`))
	if caption == "" {
		return "", fmt.Errorf("%w: empty caption", core.ErrEnrichment)
	}
	return caption, nil
}

// generate posts a prompt and returns the model's raw text response.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.cfg.Model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling generate API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("generate API returned %d: %s", resp.StatusCode, string(b))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding generate response: %w", err)
	}
	return out.Response, nil
}

// analysisPrompt builds the brand-analysis prompt. Deterministic hints
// are included so suggestions extend rather than contradict the scrape.
func analysisPrompt(req core.SynthesisRequest) string {
	var b strings.Builder
	b.WriteString("You are an elite CMO and Brand Strategist. Analyze this company and generate a comprehensive brand profile.\n\n")
	fmt.Fprintf(&b, "Company: %s\nWebsite: %s\nMeta Description: %s\n", req.CompanyName, req.URL, req.Description)
	if len(req.HintColors) > 0 {
		fmt.Fprintf(&b, "Colors already detected on the site: %s\n", strings.Join(req.HintColors, ", "))
	}
	if len(req.HintFonts) > 0 {
		fmt.Fprintf(&b, "Fonts already detected on the site: %s\n", strings.Join(req.HintFonts, ", "))
	}
	fmt.Fprintf(&b, "\nPage Content:\n%s\n\n", req.PageText)
	b.WriteString(`Return a valid JSON object (no markdown code blocks, just raw JSON):
{
    "company_summary": "A concise 2-3 sentence summary of what this company does and their unique value proposition.",
    "brand_vibe": ["keyword1", "keyword2", "keyword3", "keyword4"],
    "brand_colors": ["#RRGGBB", "#RRGGBB"],
    "brand_fonts": ["Font Name"],
    "strategy": {
        "brand_archetype": "The [Archetype] - one sentence why",
        "brand_voice": "Brief description of tone and personality",
        "content_pillars": ["Pillar 1: brief description", "Pillar 2: brief description", "Pillar 3: brief description", "Pillar 4: brief description"],
        "visual_style_guide": ["Directive 1", "Directive 2", "Directive 3"],
        "recommended_post_types": ["Type 1", "Type 2", "Type 3"],
        "campaign_ideas": ["Idea 1: Hook description", "Idea 2: Hook description", "Idea 3: Hook description"],
        "target_audience": "Demographics and psychographics in 1-2 sentences",
        "key_strengths": ["Strength 1", "Strength 2", "Strength 3"],
        "design_style": "Brief visual design style description"
    }
}

Be specific to this company. Avoid generic content. Keep answers concise and punchy.`)
	return b.String()
}

// captionPrompt builds a single-caption prompt for the content planner.
func captionPrompt(req core.CaptionRequest) string {
	return fmt.Sprintf(`You are the social media manager for %s. %s
Write one %s post caption about "%s". Voice: %s.
Keep it under 60 words, no hashtag spam, no surrounding quotes. Return only the caption text.`,
		req.CompanyName, req.Summary, req.PostType, req.Pillar, req.Voice)
}
