package signals

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are elements removed before visible text is collected.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"iframe", "svg", "canvas", "embed", "object",
	"form", "button", "input", "select", "textarea",
}

// boilerplateMarkers flag lines that carry no brand signal: consent
// banners, legal footers, auth and share chrome.
var boilerplateMarkers = []string{
	"cookie", "privacy policy", "terms of service", "terms & conditions",
	"all rights reserved", "sign in", "sign up", "log in", "login",
	"subscribe to our newsletter", "share on", "follow us",
}

// MaxTextFragments caps the number of distinct visible-text fragments
// collected per page.
const MaxTextFragments = 200

const minFragmentLen = 6

var (
	markdownLink    = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	markdownHeading = regexp.MustCompile(`^#{1,6}\s+`)
	markdownBullet  = regexp.MustCompile(`^[-*+]\s+|^\d+\.\s+`)
)

// VisibleText collects the page's visible text as deduplicated
// fragments, at most MaxTextFragments of them. The main content
// container is converted to Markdown so headings, paragraphs, lists,
// and link text all surface as plain lines.
func VisibleText(doc *goquery.Document) []string {
	html := mainContentHTML(doc)
	if html == "" {
		return nil
	}

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		// Malformed fragment: fall back to the raw text of the document.
		markdown = doc.Text()
	}

	seen := make(map[string]bool)
	var fragments []string
	for _, line := range strings.Split(markdown, "\n") {
		line = cleanMarkdownLine(line)
		if len(line) < minFragmentLen || seen[line] {
			continue
		}
		seen[line] = true
		fragments = append(fragments, line)
		if len(fragments) >= MaxTextFragments {
			break
		}
	}
	return fragments
}

// Condense drops boilerplate fragments and truncates the result to the
// given character budget. The output is the text payload handed to AI
// enrichment.
func Condense(fragments []string, budget int) string {
	var kept []string
	for _, f := range fragments {
		lower := strings.ToLower(f)
		boring := false
		for _, marker := range boilerplateMarkers {
			if strings.Contains(lower, marker) {
				boring = true
				break
			}
		}
		if !boring {
			kept = append(kept, f)
		}
	}
	text := strings.Join(kept, "\n")
	if budget > 0 && len(text) > budget {
		text = text[:budget]
	}
	return text
}

// mainContentHTML returns the best content container with noise
// elements removed. <main> is the most semantically correct, then
// <article>, then <body>.
func mainContentHTML(doc *goquery.Document) string {
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		if sel := doc.Find(tag); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return ""
	}

	work := content.Clone()
	for _, sel := range noiseSelectors {
		work.Find(sel).Remove()
	}

	html, err := goquery.OuterHtml(work)
	if err != nil {
		return ""
	}
	return html
}

// cleanMarkdownLine strips Markdown syntax so only visible text remains.
func cleanMarkdownLine(line string) string {
	line = strings.TrimSpace(line)
	line = markdownHeading.ReplaceAllString(line, "")
	line = markdownBullet.ReplaceAllString(line, "")
	line = markdownLink.ReplaceAllString(line, "$1")
	line = strings.ReplaceAll(line, "**", "")
	line = strings.ReplaceAll(line, "`", "")
	return strings.TrimSpace(line)
}
