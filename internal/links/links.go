// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package links locates the PDF attachments on the change-notice page.
//
// The page's structure and heading wording are not contractually stable, so
// resolution is an ordered list of tiers that degrade gracefully instead of
// failing when headings are reworded:
//
//  1. Find a marker element (heading/paragraph/emphasis) whose folded text
//     contains a keyword, then collect the PDF links that follow it in
//     document order, up to a cap.
//  2. Failing that, pick the first PDF link in the content region whose
//     visible text or URL-decoded href contains a keyword.
//  3. Failing that, pick the first PDF link in the content region at all.
package links

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/chombe87/vrtic/internal/htmldoc"
	"github.com/chombe87/vrtic/internal/textutil"
)

// markerTags are the elements scanned for marker keywords, in document order.
const markerTags = "h1, h2, h3, h4, h5, h6, p, strong, em, b"

// ResolutionError reports that no PDF link could be found for a required
// document after exhausting every fallback tier.
type ResolutionError struct {
	// Document names the document type that failed, e.g. "ingredients".
	Document string
}

func (e *ResolutionError) Error() string {
	return "no PDF link resolved for " + e.Document + " document"
}

// Resolve finds up to max PDF links for the given marker keywords, each
// resolved to an absolute URL against base. Keywords are matched against
// folded text, so spelling script and diacritics do not matter. An empty
// slice means every tier came up dry.
func Resolve(doc *goquery.Document, base *url.URL, keywords []string, max int) []string {
	folded := make([]string, len(keywords))
	for i, kw := range keywords {
		folded[i] = textutil.FoldForMatch(kw)
	}

	if found := markerLinks(doc, base, folded, max); len(found) > 0 {
		return found
	}

	region := htmldoc.ContentRegion(doc)

	// Keyword match on the links themselves.
	var byKeyword []string
	region.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, target, ok := pdfTarget(a, base)
		if !ok {
			return true
		}
		decoded := href
		if d, err := url.PathUnescape(href); err == nil {
			decoded = d
		}
		if containsAny(textutil.FoldForMatch(a.Text()), folded) ||
			containsAny(textutil.FoldForMatch(decoded), folded) {
			byKeyword = append(byKeyword, target)
			return false
		}
		return true
	})
	if len(byKeyword) > 0 {
		return byKeyword
	}

	// Last resort: any PDF link in the content region.
	var any []string
	region.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if _, target, ok := pdfTarget(a, base); ok {
			any = append(any, target)
			return false
		}
		return true
	})
	return any
}

// markerLinks implements the first tier: locate the marker element, then
// collect the PDF links following it in document order, up to max.
func markerLinks(doc *goquery.Document, base *url.URL, folded []string, max int) []string {
	var marker *html.Node
	doc.Find(markerTags).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := textutil.FoldForMatch(s.Text())
		if containsAny(text, folded) || containsAny(strings.ToLower(s.Text()), folded) {
			marker = s.Nodes[0]
			return false
		}
		return true
	})
	if marker == nil {
		return nil
	}

	var found []string
	seen := false
	htmldoc.Walk(doc.Selection, func(n *html.Node) bool {
		if n == marker {
			seen = true
		}
		if !seen || n.Type != html.ElementNode || n.Data != "a" {
			return true
		}
		sel := &goquery.Selection{Nodes: []*html.Node{n}}
		if _, target, ok := pdfTarget(sel, base); ok {
			found = append(found, target)
		}
		return len(found) < max
	})
	return found
}

// pdfTarget reports whether the anchor links to a PDF, returning the raw
// href and the absolute target URL.
func pdfTarget(a *goquery.Selection, base *url.URL) (href, target string, ok bool) {
	href, exists := a.Attr("href")
	if !exists {
		return "", "", false
	}
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", "", false
	}
	resolved := base.ResolveReference(u)
	if !strings.HasSuffix(strings.ToLower(resolved.Path), ".pdf") {
		return "", "", false
	}
	return href, resolved.String(), true
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
