package trend

import "time"

// TrendData represents an observed keyword trend. Rows expire after the
// configured retention window; the worker sweeps them out.
type TrendData struct {
	ID         int64       `json:"id"`
	Keyword    string      `json:"keyword"`
	Industry   string      `json:"industry,omitempty"`
	TrendScore float64     `json:"trend_score"`
	Points     []DataPoint `json:"data,omitempty"`
	Source     string      `json:"source"`
	CreatedAt  time.Time   `json:"created_at"`
}

// DataPoint is one (date, value) sample of a trend time series
type DataPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
