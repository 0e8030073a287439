package signals

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/brandpipe/core"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

func TestIsValidFont(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"Montserrat", true},
		{"Open Sans", true},
		{"Playfair Display", true},
		{"Arial", false},
		{"helvetica", false},
		{"sans-serif", false},
		{"system-ui", false},
		{"var(--font-heading)", false},
		{"--font-body", false},
		{"Apple Color Emoji", false},
		{"Font Awesome Icons", false},
		{"", false},
		{"ab", false},
		{"Roboto", false},
		{"Inter !important", true},
		{"Lato!important", true},
		{`Broken"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsValidFont(tt.name), tt.name)
		})
	}
}

func TestPageFontsGoogleLink(t *testing.T) {
	t.Parallel()

	html := `<html><head>
		<link href="https://fonts.googleapis.com/css?family=Montserrat:400,700|Open+Sans" rel="stylesheet">
	</head><body></body></html>`

	fonts := PageFonts(parseDoc(t, html))
	require.Len(t, fonts, 2)
	assert.Equal(t, core.FontCandidate{Family: "Montserrat", Source: core.FontSourceGoogleLink}, fonts[0])
	assert.Equal(t, core.FontCandidate{Family: "Open Sans", Source: core.FontSourceGoogleLink}, fonts[1])
}

func TestPageFontsStyleBlocksAndAttrs(t *testing.T) {
	t.Parallel()

	html := `<html><head>
		<style>h1 { font-family: 'Playfair Display', serif; }</style>
	</head><body>
		<p style="font-family: Lato, sans-serif">text</p>
	</body></html>`

	fonts := PageFonts(parseDoc(t, html))
	require.Len(t, fonts, 2)
	assert.Equal(t, "Playfair Display", fonts[0].Family)
	assert.Equal(t, "Lato", fonts[1].Family)
	assert.Equal(t, core.FontSourceCSS, fonts[1].Source)
}

func TestPageFontsDeduplicates(t *testing.T) {
	t.Parallel()

	html := `<html><head>
		<link href="https://fonts.googleapis.com/css2?family=Montserrat" rel="stylesheet">
		<style>body { font-family: montserrat; }</style>
	</head><body></body></html>`

	fonts := PageFonts(parseDoc(t, html))
	require.Len(t, fonts, 1)
	assert.Equal(t, core.FontSourceGoogleLink, fonts[0].Source)
}
