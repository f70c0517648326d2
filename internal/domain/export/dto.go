package export

// Format selects the export encoding.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatJSON  Format = "json"
)

// NoDataSentinel is returned for every format when a user has no entries.
const NoDataSentinel = "No data available for export"

// Result is a rendered export ready to be written to the client.
type Result struct {
	Content     []byte
	ContentType string
	Filename    string
}

// Summary is the derived block attached to spreadsheet-style exports.
type Summary struct {
	TotalEntries  int     `json:"total_entries"`
	TotalHours    float64 `json:"total_hours"`
	AverageHours  float64 `json:"average_hours"`
	DateRange     string  `json:"date_range"`
}
