package fuse

import (
	"strings"

	"github.com/gaurav-prasanna/brandpipe/core"
)

// DefaultFontFamily is used when no valid font candidate survives.
const DefaultFontFamily = "Inter"

const maxFonts = 5

// BuildFontSet deduplicates and ranks font candidates into a resolved
// FontSet. Candidates are expected pre-validated (the signal extractors
// and the enrichment adapter both filter before handing fonts over);
// ordering encodes priority, so scraped candidates should precede
// AI-inferred ones. The result is never empty.
func BuildFontSet(cands []core.FontCandidate) core.FontSet {
	seen := make(map[string]bool)
	var set core.FontSet
	for _, c := range cands {
		lower := strings.ToLower(strings.TrimSpace(c.Family))
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true

		info := core.FontInfo{Family: strings.TrimSpace(c.Family), Source: c.Source}
		switch len(set) {
		case 0:
			info.Style = "Display"
			info.IsPrimary = true
		case 1:
			info.Style = "Body"
			info.IsBody = true
		}
		set = append(set, info)
		if len(set) >= maxFonts {
			break
		}
	}

	if len(set) == 0 {
		set = core.FontSet{{
			Family:    DefaultFontFamily,
			Style:     "Display",
			Source:    core.FontSourceAI,
			IsPrimary: true,
		}}
	}
	return set
}
