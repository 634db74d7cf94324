package smard

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_WritesAnchorWeekAndSkipsIncompleteWeeks(t *testing.T) {
	anchor := BerlinMidnightMillis(2025, 9, 2)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case fmt.Sprintf("/410/DE/410_DE_hour_%d.json", anchor):
			fmt.Fprintf(w, `{"series":[[%d,51000.25],[%d,49876.0]]}`, anchor, anchor+3600000)
		case fmt.Sprintf("/4169/DE/4169_DE_hour_%d.json", anchor):
			fmt.Fprintf(w, `{"series":[[%d,84.3],[%d,null]]}`, anchor, anchor+3600000)
		default:
			// Later weeks are not published yet.
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := NewClient(srv.URL, "", "")
	require.NoError(t, Extract(context.Background(), c, 2025, 9, 2, DefaultProbeDays, dir))

	// Exactly the anchor week was written; unpublished weeks were skipped
	// without failing the run.
	files, err := filepath.Glob(filepath.Join(dir, "data_*.csv"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "data_2025_09_02.csv", filepath.Base(files[0]))

	rows, err := ReadWeekCSV(files[0])
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 84.3, *rows[0].Price)
	assert.Equal(t, 51000.25, *rows[0].Demand)
	assert.Nil(t, rows[1].Price, "null price stays a missing cell")
	assert.Equal(t, 49876.0, *rows[1].Demand)
}

func TestExtract_NoAnchorFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer srv.Close()

	c := NewClient(srv.URL, "", "")
	err := Extract(context.Background(), c, 2025, 9, 2, 3, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dataset found")
}

func TestExtract_WriteTargetDirCreated(t *testing.T) {
	anchor := BerlinMidnightMillis(2025, 9, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case fmt.Sprintf("/410/DE/410_DE_hour_%d.json", anchor),
			fmt.Sprintf("/4169/DE/4169_DE_hour_%d.json", anchor):
			fmt.Fprintf(w, `{"series":[[%d,1.0]]}`, anchor)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "nested", "smard_data")
	c := NewClient(srv.URL, "", "")
	require.NoError(t, Extract(context.Background(), c, 2025, 9, 2, DefaultProbeDays, dir))

	_, err := os.Stat(filepath.Join(dir, "data_2025_09_02.csv"))
	assert.NoError(t, err)
}
