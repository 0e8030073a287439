package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"scheme and www stripped", "https://www.Example.com/path/", "example.com/path"},
		{"query dropped", "https://example.com/page?utm=1", "example.com/page"},
		{"fragment dropped", "https://example.com/page#section", "example.com/page"},
		{"bare domain", "example.com", "example.com"},
		{"http scheme", "http://example.com/", "example.com"},
		{"whitespace trimmed", "  https://example.com  ", "example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	urls := []string{
		"https://www.example.com/about/",
		"HTTP://EXAMPLE.COM/Contact?x=1#top",
		"example.com",
	}
	for _, u := range urls {
		once := Normalize(u)
		assert.Equal(t, once, Normalize(once), "normalizing twice must equal once for %q", u)
	}
}

func TestSameSite(t *testing.T) {
	t.Parallel()

	domain := RegistrableDomain("www.example.com")
	assert.Equal(t, "example.com", domain)

	assert.True(t, SameSite("https://example.com/about", domain))
	assert.True(t, SameSite("https://blog.example.com/post", domain))
	assert.False(t, SameSite("https://other.com/about", domain))
	assert.False(t, SameSite("/relative/path", domain))
}

func TestRegistrableDomainStripsPort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "127.0.0.1", RegistrableDomain("127.0.0.1:8080"))
	assert.Equal(t, "example.co.uk", RegistrableDomain("www.example.co.uk"))
}

func TestIsStaticAsset(t *testing.T) {
	t.Parallel()

	assert.True(t, IsStaticAsset("https://example.com/logo.png"))
	assert.True(t, IsStaticAsset("https://example.com/app.js?v=2"))
	assert.True(t, IsStaticAsset("https://example.com/doc.PDF"))
	assert.False(t, IsStaticAsset("https://example.com/about"))
	assert.False(t, IsStaticAsset("https://example.com/pricing.html"))
}

func TestEnsureScheme(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://example.com", EnsureScheme("example.com"))
	assert.Equal(t, "https://example.com", EnsureScheme("https://example.com"))
	assert.Equal(t, "http://example.com", EnsureScheme("http://example.com"))
}
