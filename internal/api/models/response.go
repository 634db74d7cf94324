package models

// MergedResponse is the JSON shape of the merged dataset endpoint.
type MergedResponse struct {
	Columns []string    `json:"columns"`
	Rows    []MergedRow `json:"rows"`
	Count   int         `json:"count"`
}

// MergedRow is one joined record. Values are keyed by column name; cells
// that do not parse as numbers are passed through as strings.
type MergedRow struct {
	TimeBerlin string                 `json:"time_berlin"`
	Values     map[string]interface{} `json:"values"`
}

// WeekInfo describes one weekly market CSV on disk.
type WeekInfo struct {
	File string `json:"file"`
	Week string `json:"week"`
}

// WeeksResponse lists the available weekly market files.
type WeeksResponse struct {
	Weeks []WeekInfo `json:"weeks"`
	Count int        `json:"count"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
