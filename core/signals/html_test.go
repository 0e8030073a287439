package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyNameFromOGSiteName(t *testing.T) {
	t.Parallel()

	html := `<html><head>
		<meta property="og:site_name" content="Acme Corp">
		<title>Home | Acme Corporation Limited</title>
	</head></html>`
	assert.Equal(t, "Acme Corp", CompanyName(parseDoc(t, html)))
}

func TestCompanyNameFromTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"pipe separator", "Professional Web Design Services | Acme", "Acme"},
		{"dash separator", "Acme - Digital Agency in Berlin", "Acme"},
		{"colon separator", "Acme: build better brands", "Acme"},
		{"no separator", "Acme Studio", "Acme Studio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			html := "<html><head><title>" + tt.title + "</title></head></html>"
			assert.Equal(t, tt.want, CompanyName(parseDoc(t, html)))
		})
	}
}

func TestCompanyNameTruncatesLongTitle(t *testing.T) {
	t.Parallel()

	long := "An Extremely Long Page Title Without Any Separator That Keeps Going"
	html := "<html><head><title>" + long + "</title></head></html>"
	assert.Equal(t, long[:50], CompanyName(parseDoc(t, html)))
}

func TestCompanyNameEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", CompanyName(parseDoc(t, "<html><head></head><body></body></html>")))
}

func TestDescription(t *testing.T) {
	t.Parallel()

	html := `<html><head>
		<meta name="description" content="We build rockets.">
		<meta property="og:description" content="Social copy.">
	</head></html>`
	assert.Equal(t, "We build rockets.", Description(parseDoc(t, html)))

	ogOnly := `<html><head><meta property="og:description" content="Social copy."></head></html>`
	assert.Equal(t, "Social copy.", Description(parseDoc(t, ogOnly)))

	assert.Equal(t, "", Description(parseDoc(t, "<html></html>")))
}

func TestFavicon(t *testing.T) {
	t.Parallel()

	html := `<html><head><link rel="shortcut icon" href="/img/fav.png"></head></html>`
	assert.Equal(t, "https://example.com/img/fav.png", Favicon(parseDoc(t, html), "https://example.com/about"))

	assert.Equal(t, "https://example.com/favicon.ico",
		Favicon(parseDoc(t, "<html></html>"), "https://example.com"))
}

func TestAbsURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://example.com/a/b", AbsURL("https://example.com/a/", "b"))
	assert.Equal(t, "https://cdn.example.com/x.css", AbsURL("https://example.com", "//cdn.example.com/x.css"))
	assert.Equal(t, "https://other.com/", AbsURL("https://example.com", "https://other.com/"))
}
