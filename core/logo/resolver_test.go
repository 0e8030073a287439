package logo

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

func TestResolveHeaderImage(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<header><img src="/assets/logo.svg" alt="Acme"></header>
		<img src="/other.png">
	</body></html>`

	asset := Resolve(parseDoc(t, html), "https://example.com")
	require.NotNil(t, asset)
	assert.Equal(t, "https://example.com/assets/logo.svg", asset.URL)
	assert.Equal(t, "svg", asset.Format)
	assert.True(t, asset.IsSVG)
}

func TestResolvePrefersLazyAttr(t *testing.T) {
	t.Parallel()

	html := `<html><body><nav>
		<img src="data:image/gif;base64,R0lGOD" data-src="/real-logo.png">
	</nav></body></html>`

	asset := Resolve(parseDoc(t, html), "https://example.com")
	require.NotNil(t, asset)
	assert.Equal(t, "https://example.com/real-logo.png", asset.URL)
	assert.Equal(t, "png", asset.Format)
}

func TestResolveLogoToken(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<img src="/banner.jpg">
		<img class="site-logo" src="/brand.webp">
	</body></html>`

	asset := Resolve(parseDoc(t, html), "https://example.com")
	require.NotNil(t, asset)
	assert.Equal(t, "https://example.com/brand.webp", asset.URL)
	assert.Equal(t, "webp", asset.Format)
}

func TestResolveSkipsDataURIToken(t *testing.T) {
	t.Parallel()

	// A data: src must not count as a "logo" token match even though
	// base64 payloads can contain the letters.
	html := `<html><body>
		<img src="data:image/png;base64,bG9nbwbase">
		<meta property="og:image" content="https://example.com/share.png">
	</body></html>`

	asset := Resolve(parseDoc(t, html), "https://example.com")
	require.NotNil(t, asset)
	assert.Equal(t, "https://example.com/share.png", asset.URL)
}

func TestResolveBrandAnchor(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<a class="navbar-brand" href="/"><img src="/mark.png"></a>
	</body></html>`

	asset := Resolve(parseDoc(t, html), "https://example.com")
	require.NotNil(t, asset)
	assert.Equal(t, "https://example.com/mark.png", asset.URL)
}

func TestResolveTouchIconAndOGImage(t *testing.T) {
	t.Parallel()

	html := `<html><head>
		<link rel="apple-touch-icon" href="/touch.png">
		<meta property="og:image" content="/share.png">
	</head><body></body></html>`

	asset := Resolve(parseDoc(t, html), "https://example.com")
	require.NotNil(t, asset)
	assert.Equal(t, "https://example.com/touch.png", asset.URL)
}

func TestResolveServiceFallback(t *testing.T) {
	t.Parallel()

	asset := Resolve(parseDoc(t, "<html><body></body></html>"), "https://www.example.com/about")
	require.NotNil(t, asset)
	assert.Equal(t, "https://logo.clearbit.com/example.com", asset.URL)
	assert.Equal(t, "png", asset.Format)
}

func TestResolveBadBase(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Resolve(parseDoc(t, "<html></html>"), "not a url"))
}

func TestResolveQueryIgnoredForFormat(t *testing.T) {
	t.Parallel()

	html := `<html><body><header><img src="/logo.svg?v=3"></header></body></html>`
	asset := Resolve(parseDoc(t, html), "https://example.com")
	require.NotNil(t, asset)
	assert.Equal(t, "svg", asset.Format)
}
