// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package htmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestContentRegion(t *testing.T) {
	doc, err := Parse(`<html><body>
<header>Sajt vrtića</header>
<article><div class="entry-content"><p>Jelovnik</p></div></article>
</body></html>`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jelovnik"}, TextLines(ContentRegion(doc)))
}

func TestContentRegionFallsBackToWholeDocument(t *testing.T) {
	doc, err := Parse(`<html><body><p>Bez omota</p></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Bez omota"}, TextLines(ContentRegion(doc)))
}

func TestTextLinesSkipsScriptAndCollapsesWhitespace(t *testing.T) {
	doc, err := Parse(`<html><body><div>
<script>var skip = 1;</script>
<style>p { color: red; }</style>
<p>  Doručak  –
 Čaj  </p>
<p></p>
<p>Užina</p>
</div></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Doručak – Čaj", "Užina"}, TextLines(doc.Selection))
}

func TestWalkStopsWhenVisitorReturnsFalse(t *testing.T) {
	doc, err := Parse(`<html><body><p>prvi</p><p>drugi</p></body></html>`)
	require.NoError(t, err)

	var visited int
	Walk(doc.Selection, func(n *html.Node) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}
