package budget

import "time"

// Budget caps spending for one category in one month. The spent figure is
// never stored; it is recomputed from the transaction history on every read.
type Budget struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Month     string    `json:"month"` // YYYY-MM
	Limit     float64   `json:"limit"`
	CreatedAt time.Time `json:"created_at"`
}
