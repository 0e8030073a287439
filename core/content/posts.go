// Package content plans social-media post drafts from a brand profile.
package content

import (
	"context"
	"fmt"

	"github.com/gaurav-prasanna/brandpipe/core"
	"github.com/gaurav-prasanna/brandpipe/core/enrich"
	"github.com/gaurav-prasanna/brandpipe/logger"
)

var weekDays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Planner turns a profile's strategy into a week of post drafts.
// captioner may be nil; captions then fall back to templates.
type Planner struct {
	captioner core.Captioner
	log       logger.Interface
}

// NewPlanner creates a Planner.
func NewPlanner(captioner core.Captioner, log logger.Interface) *Planner {
	if log == nil {
		log = logger.NewNop()
	}
	return &Planner{captioner: captioner, log: log}
}

// PlanWeek drafts one post per weekday, cycling through the strategy's
// post types and content pillars. It always returns seven drafts.
func (p *Planner) PlanWeek(ctx context.Context, profile *core.BrandProfile) []core.PostDraft {
	strategy := profile.Strategy
	if strategy == nil {
		strategy = enrich.DefaultStrategy()
	}
	postTypes := strategy.RecommendedPostTypes
	if len(postTypes) == 0 {
		postTypes = []string{"Educational Post"}
	}
	pillars := strategy.ContentPillars
	if len(pillars) == 0 {
		pillars = []string{"Company Updates"}
	}

	drafts := make([]core.PostDraft, 0, len(weekDays))
	for i, day := range weekDays {
		postType := postTypes[i%len(postTypes)]
		pillar := pillars[i%len(pillars)]
		drafts = append(drafts, core.PostDraft{
			Day:         day,
			PostType:    postType,
			Caption:     p.caption(ctx, profile, strategy, postType, pillar),
			ImagePrompt: imagePrompt(profile, postType, pillar),
		})
	}
	return drafts
}

func (p *Planner) caption(ctx context.Context, profile *core.BrandProfile, strategy *core.BrandStrategy, postType, pillar string) string {
	if p.captioner != nil {
		caption, err := p.captioner.Caption(ctx, core.CaptionRequest{
			CompanyName: profile.CompanyName,
			Summary:     profile.Summary,
			PostType:    postType,
			Pillar:      pillar,
			Voice:       strategy.Voice,
		})
		if err == nil && caption != "" {
			return caption
		}
		if err != nil {
			p.log.Warn("caption generation failed, using template", "error", err)
		}
	}
	return fmt.Sprintf("%s: a %s from %s. %s", pillar, postType, profile.CompanyName, profile.Summary)
}

func imagePrompt(profile *core.BrandProfile, postType, pillar string) string {
	style := "clean, modern"
	if profile.Strategy != nil && profile.Strategy.DesignStyle != "" {
		style = profile.Strategy.DesignStyle
	}
	return fmt.Sprintf("%s social media graphic for %s about %s, %s style, brand color %s",
		postType, profile.CompanyName, pillar, style, profile.Colors.Primary)
}
