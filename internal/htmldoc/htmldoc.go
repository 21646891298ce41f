// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package htmldoc provides the HTML structure access shared by the
// change-notice parser and the PDF link resolver: content-region selection,
// document-order traversal, and stripped text-node enumeration.
package htmldoc

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/chombe87/vrtic/internal/textutil"
)

// contentSelector picks the page's primary content container. The source is
// a WordPress site, so the article body lives in an entry-content div.
const contentSelector = "article .entry-content"

// Parse builds a goquery document from raw page markup.
func Parse(markup string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(markup))
}

// ContentRegion returns the primary content region of doc, falling back to
// the whole document when no known container is present.
func ContentRegion(doc *goquery.Document) *goquery.Selection {
	if region := doc.Find(contentSelector); region.Length() > 0 {
		return region
	}
	return doc.Selection
}

// Walk visits every node under sel in document order. It skips the contents
// of script and style elements, which carry no visible text. The visitor
// returns false to stop the walk.
func Walk(sel *goquery.Selection, visit func(n *html.Node) bool) {
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return true
		}
		if !visit(n) {
			return false
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	for _, root := range sel.Nodes {
		if !walk(root) {
			return
		}
	}
}

// TextLines returns the collapsed, non-empty text nodes under sel in
// document order.
func TextLines(sel *goquery.Selection) []string {
	var lines []string
	Walk(sel, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			if line := textutil.CollapseWhitespace(n.Data); line != "" {
				lines = append(lines, line)
			}
		}
		return true
	})
	return lines
}
