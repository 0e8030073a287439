package enrich

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gaurav-prasanna/brandpipe/core"
)

const maxVibeKeywords = 4

// rawSynthesis mirrors the JSON the model is asked to produce. List
// fields decode as raw messages so heterogeneous item shapes can be
// normalized in one place instead of duck-typed downstream.
type rawSynthesis struct {
	CompanySummary string            `json:"company_summary"`
	BrandVibe      []json.RawMessage `json:"brand_vibe"`
	BrandColors    []json.RawMessage `json:"brand_colors"`
	BrandFonts     []json.RawMessage `json:"brand_fonts"`
	Strategy       *rawStrategy      `json:"strategy"`
}

type rawStrategy struct {
	BrandArchetype       string            `json:"brand_archetype"`
	BrandVoice           string            `json:"brand_voice"`
	ContentPillars       []json.RawMessage `json:"content_pillars"`
	VisualStyleGuide     []json.RawMessage `json:"visual_style_guide"`
	RecommendedPostTypes []json.RawMessage `json:"recommended_post_types"`
	CampaignIdeas        []json.RawMessage `json:"campaign_ideas"`
	TargetAudience       string            `json:"target_audience"`
	KeyStrengths         []json.RawMessage `json:"key_strengths"`
	DesignStyle          string            `json:"design_style"`
}

// parseSynthesis extracts the JSON object from the model's text output
// and validates it into a normalized core.Synthesis.
func parseSynthesis(text string) (*core.Synthesis, error) {
	obj := extractJSON(text)
	if obj == "" {
		return nil, errors.New("no JSON object in response")
	}

	var raw rawSynthesis
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling synthesis: %w", err)
	}
	if raw.CompanySummary == "" && raw.Strategy == nil {
		return nil, errors.New("response carries neither summary nor strategy")
	}

	syn := &core.Synthesis{
		Summary:         strings.TrimSpace(raw.CompanySummary),
		VibeKeywords:    normalizeList(raw.BrandVibe),
		SuggestedColors: normalizeList(raw.BrandColors),
		SuggestedFonts:  normalizeList(raw.BrandFonts),
	}
	if len(syn.VibeKeywords) > maxVibeKeywords {
		syn.VibeKeywords = syn.VibeKeywords[:maxVibeKeywords]
	}
	if raw.Strategy != nil {
		syn.Strategy = raw.Strategy.normalize()
	}
	return syn, nil
}

// normalize converts a raw strategy into the typed BrandStrategy with
// every list flattened to plain strings.
func (r *rawStrategy) normalize() *core.BrandStrategy {
	return &core.BrandStrategy{
		Archetype:            strings.TrimSpace(r.BrandArchetype),
		Voice:                strings.TrimSpace(r.BrandVoice),
		ContentPillars:       normalizeList(r.ContentPillars),
		VisualStyleGuide:     normalizeList(r.VisualStyleGuide),
		RecommendedPostTypes: normalizeList(r.RecommendedPostTypes),
		CampaignIdeas:        normalizeList(r.CampaignIdeas),
		TargetAudience:       strings.TrimSpace(r.TargetAudience),
		KeyStrengths:         normalizeList(r.KeyStrengths),
		DesignStyle:          strings.TrimSpace(r.DesignStyle),
	}
}

// normalizeList flattens heterogeneous list items to strings. Models
// sometimes return objects ({"title": ..., "description": ...}) where
// strings were requested.
func normalizeList(items []json.RawMessage) []string {
	var out []string
	for _, item := range items {
		if s := normalizeItem(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func normalizeItem(item json.RawMessage) string {
	var s string
	if err := json.Unmarshal(item, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var obj map[string]any
	if err := json.Unmarshal(item, &obj); err == nil {
		var parts []string
		if title, ok := obj["title"].(string); ok && title != "" {
			parts = append(parts, title)
		}
		if desc, ok := obj["description"].(string); ok && desc != "" {
			parts = append(parts, desc)
		}
		if len(parts) == 0 {
			keys := make([]string, 0, len(obj))
			for k := range obj {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if v, ok := obj[k].(string); ok && v != "" {
					parts = append(parts, v)
				}
			}
		}
		return strings.Join(parts, ": ")
	}

	var n float64
	if err := json.Unmarshal(item, &n); err == nil {
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", n), "0"), ".")
	}
	return ""
}

// extractJSON returns the outermost {...} block of a text response, or
// "" when none exists. Models wrap JSON in prose or code fences often
// enough that plain decoding is not reliable.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
