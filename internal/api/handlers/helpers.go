package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dattibou/Strommarkt-Analyse/internal/api/models"
	"github.com/Dattibou/Strommarkt-Analyse/internal/dataset"
)

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error: models.ErrorDetail{Code: "NOT_FOUND", Message: msg},
	})
}

func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: err.Error()},
	})
}

// parseRange reads optional from/to query parameters in the dataset time
// format. A malformed parameter writes a 400 and reports !ok.
func parseRange(c *gin.Context) (from, to time.Time, ok bool) {
	var err error
	if s := c.Query("from"); s != "" {
		if from, err = dataset.ParseTime(s); err != nil {
			badRequest(c, "invalid from parameter: "+err.Error())
			return from, to, false
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err = dataset.ParseTime(s); err != nil {
			badRequest(c, "invalid to parameter: "+err.Error())
			return from, to, false
		}
	}
	return from, to, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: "BAD_REQUEST", Message: msg},
	})
}
