// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chombe87/vrtic/internal/artifact"
	"github.com/chombe87/vrtic/internal/fetch"
	"github.com/chombe87/vrtic/internal/links"
	"github.com/chombe87/vrtic/pkg/types"
)

const noticePage = `<html><body><article><div class="entry-content">
<h2>Izmena jelovnika za januar 2026</h2>
<p>15.01.2026. Četvrtak</p>
<p>Doručak – Čaj, hleb, džem</p>
<p>Objekat A, Objekat B.</p>
<p><a href="/uploads/jelovnik.pdf">Jelovnik</a></p>
<p><a href="/uploads/sastav.pdf">Sastav namirnica</a></p>
<p><a href="/uploads/alergeni.pdf">Alergeni</a></p>
</div></article></body></html>`

// fakeExtractor maps raw PDF bodies to pre-split text lines.
type fakeExtractor struct {
	lines map[string][]string
}

func (f *fakeExtractor) Lines(data []byte) ([]string, error) {
	return f.lines[string(data)], nil
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/jelovnik-januar-2026/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(noticePage))
	})
	mux.HandleFunc("/uploads/jelovnik.pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("menu-pdf"))
	})
	mux.HandleFunc("/uploads/sastav.pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ingredients-pdf"))
	})
	mux.HandleFunc("/uploads/alergeni.pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("allergens-pdf"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	restore := fetch.BaseURL
	fetch.BaseURL = srv.URL
	t.Cleanup(func() { fetch.BaseURL = restore })
	return srv
}

func testExtractor() *fakeExtractor {
	return &fakeExtractor{lines: map[string][]string{
		"menu-pdf": {
			"15.01.2026. Četvrtak",
			"D- Čaj, hleb, džem - 250 kcal",
			"Р- Пиле у сосу, пире кромпир - 350 kcal",
		},
		"ingredients-pdf": {
			"PILEĆA SUPA",
			"Čorba: piletina, mrkva, peršun",
		},
		"allergens-pdf": {
			"Gluten: hleb, testenina",
		},
	}}
}

func readJSON(t *testing.T, dir, name string, v any) {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err, name)
	require.NoError(t, json.Unmarshal(raw, v), name)
}

func TestRunWritesAllArtifacts(t *testing.T) {
	testServer(t)
	dir := t.TempDir()

	cfg := types.FetchConfig{Year: 2026, Month: 1, OutputDir: dir}
	var out bytes.Buffer
	require.NoError(t, Run(cfg, testExtractor(), &out))

	var changes types.ChangeNotice
	readJSON(t, dir, artifact.FileMenuChanges, &changes)
	require.Len(t, changes.Entries, 1)
	day := changes.Entries[0]
	assert.Equal(t, "2026-01-15", day.Date)
	assert.Equal(t, "Četvrtak", day.Weekday)
	require.Len(t, day.Meals, 1)
	assert.Equal(t, types.MealBreakfast, day.Meals[0].Code)
	assert.Equal(t, []string{"Objekat A", "Objekat B"}, day.Meals[0].AffectedUnits)

	var monthly types.MonthlyMenu
	readJSON(t, dir, artifact.FileMonthlyMenu, &monthly)
	require.Len(t, monthly.Days, 1)
	require.Len(t, monthly.Days[0].Meals, 2)
	lunch := monthly.Days[0].Meals[1]
	assert.Equal(t, types.MealLunch, lunch.Code)
	assert.Equal(t, "Пиле у сосу, пире кромпир", lunch.Text)
	assert.Equal(t, []float64{350}, lunch.Calories)

	var list types.IngredientList
	readJSON(t, dir, artifact.FileIngredients, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "PILEĆA SUPA", list.Items[0].Category)
	assert.Equal(t, "Čorba", list.Items[0].Name)

	var sheet types.AllergenSheet
	readJSON(t, dir, artifact.FileAllergens, &sheet)
	assert.Equal(t, []string{"Gluten: hleb, testenina"}, sheet.Lines)

	var meta types.Metadata
	readJSON(t, dir, artifact.FileMetadata, &meta)
	assert.Equal(t, 2026, meta.Year)
	assert.Equal(t, 1, meta.Month)
	assert.True(t, strings.HasSuffix(meta.Sources.MenuPDF, "/uploads/jelovnik.pdf"))
	assert.True(t, strings.HasSuffix(meta.Sources.Page, "/jelovnik-januar-2026/"))
	assert.False(t, meta.GeneratedAt.IsZero())

	assert.Contains(t, out.String(), "[5/5] done")
}

func TestRunSkipAllergens(t *testing.T) {
	testServer(t)
	dir := t.TempDir()

	cfg := types.FetchConfig{Year: 2026, Month: 1, OutputDir: dir, SkipAllergens: true}
	var out bytes.Buffer
	require.NoError(t, Run(cfg, testExtractor(), &out))

	// The marker batch still finds the allergen link, so the artifact is
	// written even though resolution failure would have been tolerated.
	_, err := os.Stat(filepath.Join(dir, artifact.FileAllergens))
	assert.NoError(t, err)
}

func TestRunUnknownMonthBeforeNetwork(t *testing.T) {
	// No server: an invalid month must fail before any request.
	restore := fetch.BaseURL
	fetch.BaseURL = "http://127.0.0.1:1"
	defer func() { fetch.BaseURL = restore }()

	cfg := types.FetchConfig{Year: 2026, Month: 13, OutputDir: t.TempDir()}
	err := Run(cfg, testExtractor(), &bytes.Buffer{})

	var unknownErr *fetch.UnknownMonthError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, 13, unknownErr.Month)
}

func TestRunPageWithoutPDFs(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/jelovnik-februar-2026/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><article><div class="entry-content">
<p>Jelovnik još nije objavljen.</p>
</div></article></body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	restore := fetch.BaseURL
	fetch.BaseURL = srv.URL
	defer func() { fetch.BaseURL = restore }()

	dir := t.TempDir()
	cfg := types.FetchConfig{Year: 2026, Month: 2, OutputDir: dir}
	err := Run(cfg, testExtractor(), &bytes.Buffer{})

	var resErr *links.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "monthly menu", resErr.Document)

	// The change notice is written before resolution; the menu never is.
	_, statErr := os.Stat(filepath.Join(dir, artifact.FileMenuChanges))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(dir, artifact.FileMonthlyMenu))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunPageFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer srv.Close()

	restore := fetch.BaseURL
	fetch.BaseURL = srv.URL
	defer func() { fetch.BaseURL = restore }()

	cfg := types.FetchConfig{Year: 2026, Month: 1, OutputDir: t.TempDir()}
	err := Run(cfg, testExtractor(), &bytes.Buffer{})

	var retErr *fetch.RetrievalError
	require.ErrorAs(t, err, &retErr)
	assert.Equal(t, http.StatusNotFound, retErr.Status)
}
