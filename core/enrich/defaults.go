package enrich

import "github.com/gaurav-prasanna/brandpipe/core"

// DefaultStrategy is the templated strategy used when synthesis fails
// or is disabled. Deterministic extraction still fills everything else.
func DefaultStrategy() *core.BrandStrategy {
	return &core.BrandStrategy{
		Archetype: "The Creator",
		Voice:     "Professional and trustworthy",
		ContentPillars: []string{
			"Industry Trends", "Company Updates",
			"Thought Leadership", "Product Tips",
		},
		VisualStyleGuide: []string{
			"Clean and modern",
			"Consistent use of brand colors",
		},
		RecommendedPostTypes: []string{"Educational", "Promotional"},
		CampaignIdeas: []string{
			"Showcase unique value proposition",
			"Highlight customer success stories",
		},
		TargetAudience: "General Professional Audience",
		KeyStrengths:   []string{"Innovation", "Reliability"},
		DesignStyle:    "Modern Professional",
	}
}
