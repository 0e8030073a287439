// Package crawl provides URL normalization, same-site rules, and scored
// internal-link discovery. Discovery operates only on the seed page;
// crawling depth is hard-bounded by the fetcher.
package crawl

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// staticExtensions are file extensions never worth fetching as pages.
var staticExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// Normalize reduces a URL to its logical identity for deduplication:
// lowercase, no scheme, no "www." prefix, no trailing slash, no query,
// no fragment. Applying it twice yields the same result as once.
func Normalize(rawURL string) string {
	u := strings.ToLower(strings.TrimSpace(rawURL))
	if i := strings.IndexAny(u, "#?"); i >= 0 {
		u = u[:i]
	}
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	u = strings.TrimPrefix(u, "www.")
	u = strings.TrimSuffix(u, "/")
	return u
}

// RegistrableDomain returns the eTLD+1 for a host, stripping any port.
// Falls back to the bare host when the public suffix list has no answer.
func RegistrableDomain(host string) string {
	host = strings.ToLower(host)
	if i := strings.LastIndex(host, ":"); i >= 0 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	if d, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return d
	}
	return strings.TrimPrefix(host, "www.")
}

// SameSite reports whether rawURL belongs to the same registrable domain.
func SameSite(rawURL string, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	return RegistrableDomain(parsed.Host) == domain
}

// IsStaticAsset reports whether a URL points at a static asset rather
// than a crawlable page.
func IsStaticAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	return staticExtensions[ext]
}

// EnsureScheme prepends https:// when the raw input carries no scheme.
func EnsureScheme(rawURL string) string {
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}
	return "https://" + rawURL
}
