// Package signals extracts raw brand signals from a parsed page: company
// name, description, favicon, visible text, colors, and fonts. Every
// function here is pure and synchronous; fusion happens elsewhere.
package signals

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// titleSeparators split page titles of the form "Page | Brand".
var titleSeparators = []string{"|", " - ", " – ", " — ", ":"}

const maxRawTitle = 50

// CompanyName extracts the company name: og:site_name first, then the
// shortest non-trivial segment of the page title (titles usually read
// "Page | Brand", and the brand is the short part). Returns "" when the
// document offers nothing; callers fall back to a domain-derived name.
func CompanyName(doc *goquery.Document) string {
	if name, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			return trimmed
		}
	}

	raw := strings.TrimSpace(doc.Find("title").First().Text())
	if raw == "" {
		return ""
	}
	for _, sep := range titleSeparators {
		if !strings.Contains(raw, sep) {
			continue
		}
		shortest := ""
		for _, part := range strings.Split(raw, sep) {
			part = strings.TrimSpace(part)
			if len(part) <= 1 {
				continue
			}
			if shortest == "" || len(part) < len(shortest) {
				shortest = part
			}
		}
		if shortest != "" {
			return shortest
		}
	}
	if len(raw) > maxRawTitle {
		return raw[:maxRawTitle]
	}
	return raw
}

// Description extracts the meta description, falling back to the
// social-share description.
func Description(doc *goquery.Document) string {
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok && strings.TrimSpace(desc) != "" {
		return strings.TrimSpace(desc)
	}
	if desc, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		return strings.TrimSpace(desc)
	}
	return ""
}

// Favicon returns the icon link target resolved against the page URL,
// or the conventional /favicon.ico default.
func Favicon(doc *goquery.Document, baseURL string) string {
	if href, ok := doc.Find(`link[rel*="icon"]`).Attr("href"); ok && href != "" {
		if resolved := AbsURL(baseURL, href); resolved != "" {
			return resolved
		}
	}
	return AbsURL(baseURL, "/favicon.ico")
}

// AbsURL resolves href against base, returning "" when either is
// unparseable. Protocol-relative URLs resolve to https.
func AbsURL(base string, href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	h, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return b.ResolveReference(h).String()
}
