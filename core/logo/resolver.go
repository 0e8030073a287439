// Package logo locates a brand logo URL through a priority-ordered
// chain of strategies. Each strategy returns a candidate or nothing;
// the first hit wins, and a domain-keyed favicon service guarantees a
// deterministic final fallback.
package logo

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/brandpipe/core"
)

// lazyAttrs are checked before src: many sites defer real image loading
// and leave a placeholder in src.
var lazyAttrs = []string{"data-src", "data-lazy-src", "data-original"}

// strategy returns a candidate logo URL or "".
type strategy func(doc *goquery.Document, base *url.URL) string

var strategies = []strategy{
	headerImage,
	logoTokenImage,
	brandAnchorImage,
	touchIcon,
	ogImage,
	logoService,
}

// Resolve runs the strategy chain and wraps the winning URL in a
// LogoAsset. The favicon-service fallback always produces a URL for a
// parseable base, so a nil result means the base URL itself was bad.
func Resolve(doc *goquery.Document, baseURL string) *core.LogoAsset {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil
	}

	for _, s := range strategies {
		if u := s(doc, base); u != "" {
			return asset(u)
		}
	}
	if u := faviconService(base); u != "" {
		return asset(u)
	}
	return nil
}

// asset infers the image format from the URL path.
func asset(u string) *core.LogoAsset {
	format := strings.ToLower(strings.TrimPrefix(path.Ext(stripQuery(u)), "."))
	if format == "" || len(format) > 4 {
		format = "png"
	}
	return &core.LogoAsset{
		URL:    u,
		Format: format,
		IsSVG:  strings.Contains(format, "svg"),
	}
}

func stripQuery(u string) string {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		return u[:i]
	}
	return u
}

// headerImage finds an image inside header, nav, or navbar containers.
func headerImage(doc *goquery.Document, base *url.URL) string {
	return realSrc(doc.Find("header img, nav img, .navbar img").First(), base)
}

// logoTokenImage finds an image whose class, id, alt, or filename
// carries a "logo" token.
func logoTokenImage(doc *goquery.Document, base *url.URL) string {
	sel := doc.Find("img").FilterFunction(func(_ int, s *goquery.Selection) bool {
		for _, attr := range []string{"class", "id", "alt", "src"} {
			v, _ := s.Attr(attr)
			if attr == "src" && strings.HasPrefix(v, "data:") {
				continue
			}
			if strings.Contains(strings.ToLower(v), "logo") {
				return true
			}
		}
		return false
	}).First()
	return realSrc(sel, base)
}

// brandAnchorImage finds an image nested in a brand or logo anchor.
func brandAnchorImage(doc *goquery.Document, base *url.URL) string {
	anchor := doc.Find("a").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		class = strings.ToLower(class)
		return strings.Contains(class, "brand") || strings.Contains(class, "logo")
	}).First()
	return realSrc(anchor.Find("img").First(), base)
}

// touchIcon returns the high-resolution apple-touch-icon link target.
func touchIcon(doc *goquery.Document, base *url.URL) string {
	href, ok := doc.Find(`link[rel*="apple-touch-icon"]`).Attr("href")
	if !ok {
		return ""
	}
	return resolveSrc(href, base)
}

// ogImage returns the social-share image.
func ogImage(doc *goquery.Document, base *url.URL) string {
	content, ok := doc.Find(`meta[property="og:image"]`).Attr("content")
	if !ok {
		return ""
	}
	return resolveSrc(content, base)
}

// logoService builds a deterministic logo-lookup URL keyed by domain.
func logoService(_ *goquery.Document, base *url.URL) string {
	domain := bareDomain(base)
	if domain == "" {
		return ""
	}
	return "https://logo.clearbit.com/" + domain
}

// faviconService builds the final favicon-service fallback URL. Always
// succeeds for a host-bearing base.
func faviconService(base *url.URL) string {
	domain := bareDomain(base)
	if domain == "" {
		return ""
	}
	return "https://t3.gstatic.com/faviconV2?client=SOCIAL&type=FAVICON&fallback_opts=TYPE,SIZE,URL&url=https://" + domain + "&size=128"
}

func bareDomain(base *url.URL) string {
	return strings.TrimPrefix(strings.ToLower(base.Hostname()), "www.")
}

// realSrc extracts the best source URL from an image selection,
// preferring lazy-loading attributes over src.
func realSrc(sel *goquery.Selection, base *url.URL) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	for _, attr := range lazyAttrs {
		if v, ok := sel.Attr(attr); ok && v != "" {
			// srcset-style values: take the first URL.
			v = strings.SplitN(strings.SplitN(v, ",", 2)[0], " ", 2)[0]
			if u := resolveSrc(v, base); u != "" {
				return u
			}
		}
	}
	if v, ok := sel.Attr("src"); ok {
		if u := resolveSrc(v, base); u != "" {
			return u
		}
	}
	return ""
}

// resolveSrc normalizes a raw src value to an absolute URL. Inline
// data: URIs are never acceptable logo candidates.
func resolveSrc(src string, base *url.URL) string {
	src = strings.TrimSpace(src)
	if src == "" || strings.HasPrefix(src, "data:") {
		return ""
	}
	if strings.HasPrefix(src, "//") {
		src = "https:" + src
	}
	parsed, err := url.Parse(src)
	if err != nil {
		return ""
	}
	return base.ResolveReference(parsed).String()
}
