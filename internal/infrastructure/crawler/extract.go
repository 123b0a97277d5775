package crawler

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"NewsPulse/internal/textproc"
)

// firstText walks an ordered selector chain and returns the first
// non-empty text it finds.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		if text := textproc.Clean(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// firstAttr walks an ordered selector chain and returns the first
// non-empty attribute value.
func firstAttr(doc *goquery.Document, selectors []string, attr string) string {
	for _, selector := range selectors {
		if value, ok := doc.Find(selector).First().Attr(attr); ok {
			if value = strings.TrimSpace(value); value != "" {
				return value
			}
		}
	}
	return ""
}

// readable extracts title and main text from raw HTML. It backs up
// the structural selectors when a portal changes its markup.
func readable(html []byte, pageURL string) (title, body string) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", ""
	}
	article, err := readability.FromReader(bytes.NewReader(html), parsed)
	if err != nil {
		return "", ""
	}
	return textproc.Clean(article.Title), textproc.Clean(article.TextContent)
}

func readableBody(html []byte, pageURL string) string {
	_, body := readable(html, pageURL)
	return body
}

// absoluteURL resolves href against base when the portal emits
// relative links.
func absoluteURL(base, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}
