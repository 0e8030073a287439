package signals

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/brandpipe/core"
	"github.com/gaurav-prasanna/brandpipe/core/fuse"
)

// cdnHosts identify third-party stylesheets whose palettes are library
// defaults, not brand signals. Matched by substring against the href.
var cdnHosts = []string{
	"cdn.jsdelivr", "cdnjs.cloudflare", "fonts.googleapis",
	"unpkg.com", "stackpath", "maxcdn",
}

var (
	hexPattern    = regexp.MustCompile(`#([0-9a-fA-F]{6})\b`)
	hex3Pattern   = regexp.MustCompile(`#([0-9a-fA-F]{3})\b`)
	rgbPattern    = regexp.MustCompile(`rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)
	hslPattern    = regexp.MustCompile(`hsl\(\s*(\d+)\s*,\s*(\d+)%?\s*,\s*(\d+)%?\s*\)`)
	varHexPattern = regexp.MustCompile(`--[\w-]+\s*:\s*#([0-9a-fA-F]{3,6})\b`)
	fontPattern   = regexp.MustCompile(`font-family\s*:\s*([^;}{]+)`)
)

// IsCDNStylesheet reports whether a stylesheet URL points at a known
// CDN or font host. Those sheets are skipped entirely.
func IsCDNStylesheet(href string) bool {
	lower := strings.ToLower(href)
	for _, host := range cdnHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}

// MineStylesheet extracts color and font candidates from stylesheet
// text. Custom-property (--name: #hex) colors most often encode the
// canonical brand palette, so they are placed at the front of the
// candidate list with root weight; every other literal is appended in
// discovery order with body weight.
func MineStylesheet(body string) ([]core.ColorCandidate, []core.FontCandidate) {
	seen := make(map[string]bool)
	var rootColors, colors []core.ColorCandidate

	for _, m := range varHexPattern.FindAllStringSubmatch(body, -1) {
		hex := fuse.ExpandShortHex("#" + m[1])
		if len(hex) != 7 || seen[hex] {
			continue
		}
		seen[hex] = true
		rootColors = append(rootColors, core.ColorCandidate{Hex: hex, Weight: core.WeightRoot})
	}

	add := func(hex string) {
		if seen[hex] {
			return
		}
		seen[hex] = true
		colors = append(colors, core.ColorCandidate{Hex: hex, Weight: core.WeightBody})
	}
	for _, m := range hexPattern.FindAllStringSubmatch(body, -1) {
		add("#" + strings.ToUpper(m[1]))
	}
	for _, m := range hex3Pattern.FindAllStringSubmatch(body, -1) {
		add(fuse.ExpandShortHex("#" + m[1]))
	}
	for _, m := range rgbPattern.FindAllStringSubmatch(body, -1) {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		add(fuse.RGBToHex(r, g, b))
	}
	for _, m := range hslPattern.FindAllStringSubmatch(body, -1) {
		h, _ := strconv.Atoi(m[1])
		s, _ := strconv.Atoi(m[2])
		l, _ := strconv.Atoi(m[3])
		add(fuse.HSLToHex(float64(h), float64(s)/100, float64(l)/100))
	}

	return append(rootColors, colors...), mineFontDeclarations(body)
}

// mineFontDeclarations pulls validated font families out of
// font-family declarations.
func mineFontDeclarations(body string) []core.FontCandidate {
	seen := make(map[string]bool)
	var fonts []core.FontCandidate
	for _, m := range fontPattern.FindAllStringSubmatch(body, -1) {
		for _, part := range strings.Split(m[1], ",") {
			name := strings.TrimSpace(strings.Trim(strings.TrimSpace(part), `'"`))
			lower := strings.ToLower(name)
			if !IsValidFont(name) || seen[lower] {
				continue
			}
			seen[lower] = true
			fonts = append(fonts, core.FontCandidate{Family: name, Source: core.FontSourceCSS})
		}
	}
	return fonts
}

// PageColors extracts color candidates embedded directly in the page:
// <style> blocks and inline style attributes. Inline colors inside
// header, nav, or hero regions carry hero weight.
func PageColors(doc *goquery.Document) []core.ColorCandidate {
	var all []core.ColorCandidate
	seen := make(map[string]bool)

	appendNew := func(cands []core.ColorCandidate) {
		for _, c := range cands {
			if seen[c.Hex] {
				continue
			}
			seen[c.Hex] = true
			all = append(all, c)
		}
	}

	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		colors, _ := MineStylesheet(s.Text())
		appendNew(colors)
	})

	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		colors, _ := MineStylesheet(style)
		weight := core.WeightBody
		if s.Closest(`header, nav, [class*="hero"], [class*="banner"]`).Length() > 0 {
			weight = core.WeightHero
		}
		for i := range colors {
			if colors[i].Weight < weight {
				colors[i].Weight = weight
			}
		}
		appendNew(colors)
	})

	return PromoteRootVars(all)
}

// PromoteRootVars stably moves root-variable colors to the front of the
// candidate list, preserving relative order within each group.
func PromoteRootVars(cands []core.ColorCandidate) []core.ColorCandidate {
	var front, rest []core.ColorCandidate
	for _, c := range cands {
		if c.Weight == core.WeightRoot {
			front = append(front, c)
		} else {
			rest = append(rest, c)
		}
	}
	return append(front, rest...)
}
