package crawl

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// highValueKeywords mark URL paths that usually describe the brand
// itself rather than product detail or blog archives.
var highValueKeywords = []string{
	"about", "services", "contact", "portfolio", "pricing", "team", "work",
}

// Link scoring values. Nav placement outweighs a keyword match, and
// every path segment of depth costs a little.
const (
	scoreNav     = 20
	scoreKeyword = 15
	depthPenalty = 2
)

// Candidate is one scored internal link discovered on the seed page.
type Candidate struct {
	URL   string
	Score int
}

// DiscoverInternal finds, scores, and ranks the internal links on a seed
// document. It returns at most max distinct candidates, best first.
// Only links on the seed's registrable domain qualify, and URLs already
// in visited (normalized form) are skipped.
func DiscoverInternal(doc *goquery.Document, seedURL string, visited map[string]bool, max int) []string {
	base, err := url.Parse(seedURL)
	if err != nil || base.Host == "" {
		return nil
	}
	domain := RegistrableDomain(base.Host)

	// hrefs appearing inside nav or header regions get a placement bonus.
	navHrefs := make(map[string]bool)
	doc.Find("nav a[href], header a[href]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok {
			navHrefs[href] = true
		}
	})

	seen := make(map[string]bool)
	var candidates []Candidate
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		resolved := resolveHref(href, base)
		if resolved == "" {
			return
		}
		if !SameSite(resolved, domain) || IsStaticAsset(resolved) {
			return
		}
		norm := Normalize(resolved)
		if norm == "" || visited[norm] || seen[norm] {
			return
		}
		seen[norm] = true
		candidates = append(candidates, Candidate{
			URL:   resolved,
			Score: scoreLink(resolved, navHrefs[href]),
		})
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if max > 0 && len(candidates) > max {
		candidates = candidates[:max]
	}
	urls := make([]string, len(candidates))
	for i, c := range candidates {
		urls[i] = c.URL
	}
	return urls
}

// scoreLink ranks a resolved internal URL.
func scoreLink(resolved string, inNav bool) int {
	score := 0
	if inNav {
		score += scoreNav
	}
	lower := strings.ToLower(resolved)
	for _, kw := range highValueKeywords {
		if strings.Contains(lower, kw) {
			score += scoreKeyword
			break
		}
	}
	if u, err := url.Parse(resolved); err == nil {
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		if segments[0] != "" {
			score -= depthPenalty * len(segments)
		}
	}
	return score
}

// resolveHref resolves a potentially relative href against the base URL,
// dropping mailto/javascript/tel/fragment links.
func resolveHref(href string, base *url.URL) string {
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return ""
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
