package signals

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/brandpipe/core"
)

// genericFonts are system and fallback families that carry no brand
// identity. Matched case-insensitively against the whole name.
var genericFonts = map[string]bool{
	"inherit": true, "initial": true, "unset": true, "revert": true,
	"sans-serif": true, "serif": true, "monospace": true, "cursive": true,
	"fantasy": true, "system-ui": true, "ui-sans-serif": true,
	"ui-serif": true, "ui-monospace": true, "-apple-system": true,
	"blinkmacsystemfont": true, "segoe ui": true, "arial": true,
	"helvetica": true, "times new roman": true, "times": true,
	"courier new": true, "courier": true, "verdana": true, "georgia": true,
	"tahoma": true,
	// emoji and symbol fonts
	"apple color emoji": true, "segoe ui emoji": true, "segoe ui symbol": true,
	"noto color emoji": true, "noto emoji": true, "android emoji": true,
	"emojisymbols": true, "symbola": true,
	// system mono fonts
	"sfmono-regular": true, "sf mono": true, "menlo": true, "consolas": true,
	"monaco": true, "liberation mono": true, "lucida console": true,
	"dejavu sans mono": true, "droid sans mono": true, "ubuntu mono": true,
	"source code pro": true,
	// other OS defaults
	"roboto": true, "noto sans": true, "liberation sans": true,
	"cantarell": true, "fira sans": true, "droid sans": true,
	"oxygen": true, "ubuntu": true,
}

var googleFamilyPattern = regexp.MustCompile(`family=([^&]+)`)

// IsValidFont reports whether a font-family name is a real brand font:
// not empty, not a CSS variable, not a generic or system family, not an
// emoji/symbol/icon font, and not a malformed CSS fragment.
func IsValidFont(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	lower = strings.TrimSpace(strings.TrimSuffix(lower, "!important"))
	if lower == "" {
		return false
	}
	if strings.HasPrefix(lower, "var(") || strings.HasPrefix(lower, "--") {
		return false
	}
	if genericFonts[lower] {
		return false
	}
	for _, kw := range []string{"emoji", "symbol", "icon"} {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	if len(lower) < 3 {
		return false
	}
	if strings.HasSuffix(lower, ")") || strings.HasSuffix(lower, `"`) || strings.Contains(lower, "!") {
		return false
	}
	return true
}

// PageFonts extracts font candidates embedded in the page: Google Fonts
// link tags, <style> blocks, and inline style attributes.
func PageFonts(doc *goquery.Document) []core.FontCandidate {
	seen := make(map[string]bool)
	var fonts []core.FontCandidate

	add := func(c core.FontCandidate) {
		lower := strings.ToLower(c.Family)
		if seen[lower] {
			return
		}
		seen[lower] = true
		fonts = append(fonts, c)
	}

	doc.Find(`link[href*="fonts.googleapis.com"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		for _, m := range googleFamilyPattern.FindAllStringSubmatch(href, -1) {
			for _, fam := range strings.Split(m[1], "|") {
				name := strings.TrimSpace(strings.SplitN(strings.ReplaceAll(fam, "+", " "), ":", 2)[0])
				if IsValidFont(name) {
					add(core.FontCandidate{Family: name, Source: core.FontSourceGoogleLink})
				}
			}
		}
	})

	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		for _, c := range mineFontDeclarations(s.Text()) {
			add(c)
		}
	})

	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		for _, c := range mineFontDeclarations(style) {
			add(c)
		}
	})

	return fonts
}
