package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSynthesisFull(t *testing.T) {
	t.Parallel()

	text := `Here is the analysis you asked for:
{
  "company_summary": "Acme makes rockets.",
  "brand_vibe": ["bold", "technical", "fast", "precise", "extra"],
  "brand_colors": ["#FF0000", "#00FF00"],
  "brand_fonts": ["Montserrat"],
  "strategy": {
    "brand_archetype": "The Explorer",
    "brand_voice": "Confident",
    "content_pillars": ["Launches", "Engineering"],
    "recommended_post_types": ["Behind the scenes"],
    "target_audience": "Aerospace engineers",
    "key_strengths": ["Speed"],
    "design_style": "Industrial"
  }
}
Hope that helps!`

	syn, err := parseSynthesis(text)
	require.NoError(t, err)

	assert.Equal(t, "Acme makes rockets.", syn.Summary)
	assert.Equal(t, []string{"bold", "technical", "fast", "precise"}, syn.VibeKeywords)
	assert.Equal(t, []string{"#FF0000", "#00FF00"}, syn.SuggestedColors)
	assert.Equal(t, []string{"Montserrat"}, syn.SuggestedFonts)

	require.NotNil(t, syn.Strategy)
	assert.Equal(t, "The Explorer", syn.Strategy.Archetype)
	assert.Equal(t, []string{"Launches", "Engineering"}, syn.Strategy.ContentPillars)
}

func TestParseSynthesisObjectListItems(t *testing.T) {
	t.Parallel()

	text := `{
  "company_summary": "Acme.",
  "strategy": {
    "content_pillars": [
      {"title": "Launches", "description": "Rocket launch coverage"},
      {"name": "Engineering", "detail": "Deep dives"},
      "Plain pillar"
    ]
  }
}`

	syn, err := parseSynthesis(text)
	require.NoError(t, err)
	require.NotNil(t, syn.Strategy)

	pillars := syn.Strategy.ContentPillars
	require.Len(t, pillars, 3)
	assert.Equal(t, "Launches: Rocket launch coverage", pillars[0])
	assert.Equal(t, "Deep dives: Engineering", pillars[1])
	assert.Equal(t, "Plain pillar", pillars[2])
}

func TestParseSynthesisCodeFence(t *testing.T) {
	t.Parallel()

	text := "```json\n{\"company_summary\": \"Fenced.\"}\n```"
	syn, err := parseSynthesis(text)
	require.NoError(t, err)
	assert.Equal(t, "Fenced.", syn.Summary)
}

func TestParseSynthesisErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{"no JSON", "I could not analyze this website."},
		{"empty object", "{}"},
		{"malformed", `{"company_summary": `},
		{"only irrelevant keys", `{"foo": "bar"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parseSynthesis(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestDefaultStrategyShape(t *testing.T) {
	t.Parallel()

	s := DefaultStrategy()
	assert.Equal(t, "The Creator", s.Archetype)
	assert.NotEmpty(t, s.ContentPillars)
	assert.NotEmpty(t, s.RecommendedPostTypes)
	assert.NotEmpty(t, s.Voice)
}
