// Package handlers implements the dataset endpoints of cmd/api.
package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Dattibou/Strommarkt-Analyse/internal/api/models"
	"github.com/Dattibou/Strommarkt-Analyse/internal/config"
	"github.com/Dattibou/Strommarkt-Analyse/internal/dataset"
)

// DatasetHandler serves the merged dataset and the weekly market files.
type DatasetHandler struct {
	cfg *config.Config
}

// NewDatasetHandler creates a handler bound to the configured paths.
func NewDatasetHandler(cfg *config.Config) *DatasetHandler {
	return &DatasetHandler{cfg: cfg}
}

// GetMerged handles GET /api/v1/merged. Optional from/to query parameters
// (dataset time format) restrict the returned range.
func (h *DatasetHandler) GetMerged(c *gin.Context) {
	t, ok := h.loadMerged(c)
	if !ok {
		return
	}

	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	resp := models.MergedResponse{Columns: append([]string{dataset.TimeColumn}, t.Columns...)}
	for _, row := range t.Rows {
		if !from.IsZero() && row.Time.Before(from) {
			continue
		}
		if !to.IsZero() && row.Time.After(to) {
			continue
		}
		values := make(map[string]interface{}, len(t.Columns))
		for _, name := range t.Columns {
			cell := row.Cells[name]
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				values[name] = v
			} else {
				values[name] = cell
			}
		}
		resp.Rows = append(resp.Rows, models.MergedRow{
			TimeBerlin: row.Time.Format(dataset.TimeLayout),
			Values:     values,
		})
	}
	resp.Count = len(resp.Rows)

	c.JSON(http.StatusOK, resp)
}

// DownloadMerged handles GET /api/v1/merged/csv and streams the file as an
// attachment.
func (h *DatasetHandler) DownloadMerged(c *gin.Context) {
	path := h.cfg.Paths.MergedFile
	if _, err := os.Stat(path); err != nil {
		notFound(c, "merged dataset has not been produced yet")
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// ListWeeks handles GET /api/v1/weeks.
func (h *DatasetHandler) ListWeeks(c *gin.Context) {
	files, err := filepath.Glob(filepath.Join(h.cfg.Paths.SMARDDir, "data_*.csv"))
	if err != nil {
		internalError(c, err)
		return
	}
	sort.Strings(files)

	resp := models.WeeksResponse{Weeks: []models.WeekInfo{}}
	for _, f := range files {
		name := filepath.Base(f)
		week := strings.TrimSuffix(strings.TrimPrefix(name, "data_"), ".csv")
		resp.Weeks = append(resp.Weeks, models.WeekInfo{
			File: name,
			Week: strings.ReplaceAll(week, "_", "-"),
		})
	}
	resp.Count = len(resp.Weeks)

	c.JSON(http.StatusOK, resp)
}

func (h *DatasetHandler) loadMerged(c *gin.Context) (*dataset.Table, bool) {
	path := h.cfg.Paths.MergedFile
	if _, err := os.Stat(path); err != nil {
		notFound(c, "merged dataset has not been produced yet")
		return nil, false
	}
	t, err := dataset.ReadCSV(path)
	if err != nil {
		internalError(c, err)
		return nil, false
	}
	return t, true
}
