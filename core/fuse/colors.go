package fuse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/gaurav-prasanna/brandpipe/core"
)

// ClusterThreshold is the RGB distance under which two candidates are
// treated as the same color (anti-aliased variants and near-duplicate
// shades collapse into one cluster).
const ClusterThreshold = 40.0

// minVibrancy excludes near-neutral colors from brand-color ranking.
const minVibrancy = 0.15

// Default palette roles when the page yields nothing usable.
const (
	DefaultPrimary    = "#4A90D9"
	DefaultBackground = "#FFFFFF"
	DefaultText       = "#1A1A1A"
)

const maxAllColors = 10

// neutralColors are common grayscale shades: frequent on pages but poor
// brand-identity signals.
var neutralColors = map[string]bool{
	"#FFFFFF": true, "#000000": true, "#333333": true, "#666666": true,
	"#999999": true, "#CCCCCC": true, "#EEEEEE": true, "#F5F5F5": true,
	"#FAFAFA": true, "#808080": true, "#E5E5E5": true, "#D4D4D4": true,
	"#F4F4F4": true, "#EDEDED": true, "#EFEFEF": true, "#9CA3AF": true,
	"#6B7280": true, "#D1D5DB": true, "#F3F4F6": true, "#F9FAFB": true,
	"#E5E7EB": true, "#374151": true, "#4B5563": true, "#1F2937": true,
	"#111827": true, "#030712": true,
}

// lightShades qualify as page backgrounds.
var lightShades = map[string]bool{
	"#FFFFFF": true, "#FAFAFA": true, "#F5F5F5": true, "#F8F8F8": true,
	"#F0F0F0": true, "#F9FAFB": true, "#F3F4F6": true, "#F4F4F4": true,
}

// darkShades qualify as body text colors.
var darkShades = map[string]bool{
	"#111111": true, "#1A1A1A": true, "#212121": true, "#222222": true,
	"#232323": true, "#2D2D2D": true, "#333333": true, "#0F172A": true,
	"#1E293B": true, "#111827": true, "#1F2937": true,
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// cluster is a group of near-identical color candidates.
type cluster struct {
	rep    string // representative hex: first candidate seen
	weight int    // accumulated weight of all members
}

// Cluster groups candidates by RGB distance to each cluster's
// representative, in discovery order. Candidate weights accumulate onto
// the cluster they join.
func Cluster(cands []core.ColorCandidate) []cluster {
	var clusters []cluster
	for _, c := range cands {
		w := c.Weight
		if w <= 0 {
			w = core.WeightBody
		}
		merged := false
		for i := range clusters {
			if Distance(c.Hex, clusters[i].rep) < ClusterThreshold {
				clusters[i].weight += w
				merged = true
				break
			}
		}
		if !merged {
			clusters = append(clusters, cluster{rep: c.Hex, weight: w})
		}
	}
	return clusters
}

// BuildPalette resolves color roles from the weighted candidate pool
// and optional AI-suggested hex colors. Deterministic candidates always
// take precedence; AI colors only fill gaps. The returned palette never
// has Primary == Background.
func BuildPalette(cands []core.ColorCandidate, aiHex []string) core.ColorPalette {
	clusters := Cluster(cands)
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].weight > clusters[j].weight
	})

	var vibrant []string
	for _, cl := range clusters {
		if neutralColors[cl.rep] || Vibrancy(cl.rep) < minVibrancy {
			continue
		}
		vibrant = append(vibrant, cl.rep)
	}
	sort.SliceStable(vibrant, func(i, j int) bool {
		return Vibrancy(vibrant[i]) > Vibrancy(vibrant[j])
	})

	var aiValid []string
	for _, h := range aiHex {
		h = strings.ToUpper(strings.TrimSpace(h))
		if hexColorPattern.MatchString(h) {
			aiValid = append(aiValid, h)
		}
	}

	// Combined pool: scraped vibrant colors first, AI fills gaps.
	pool := vibrant
	for _, h := range aiValid {
		if !containsColor(pool, h) && !neutralColors[h] && Vibrancy(h) >= minVibrancy {
			pool = append(pool, h)
		}
	}

	palette := core.ColorPalette{
		Background: DefaultBackground,
		Text:       DefaultText,
	}

	switch {
	case len(pool) > 0:
		palette.Primary = pool[0]
	case len(aiValid) > 0:
		palette.Primary = aiValid[0]
	default:
		palette.Primary = DefaultPrimary
	}

	for _, c := range append(pool, aiValid...) {
		if palette.Secondary == "" && c != palette.Primary {
			palette.Secondary = c
			continue
		}
		if palette.Secondary != "" && c != palette.Primary && c != palette.Secondary {
			palette.Accent = c
			break
		}
	}

	for _, c := range cands {
		if lightShades[c.Hex] {
			palette.Background = c.Hex
			break
		}
	}
	for _, c := range cands {
		if darkShades[c.Hex] {
			palette.Text = c.Hex
			break
		}
	}

	// Invariant: primary and background never collide.
	if palette.Primary == palette.Background {
		palette.Background = DefaultBackground
		if palette.Primary == palette.Background {
			palette.Background = "#F5F5F5"
		}
	}

	palette.AllColors = dedupColors(cands)
	return palette
}

// dedupColors keeps up to maxAllColors distinct raw candidate values in
// discovery order, for downstream display.
func dedupColors(cands []core.ColorCandidate) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range cands {
		if seen[c.Hex] {
			continue
		}
		seen[c.Hex] = true
		out = append(out, c.Hex)
		if len(out) >= maxAllColors {
			break
		}
	}
	return out
}

func containsColor(pool []string, hex string) bool {
	for _, c := range pool {
		if c == hex {
			return true
		}
	}
	return false
}
