// internal/metrics/types.go
package metrics

import "github.com/mwiater/maeplot/internal/catalog"

// ValidationMAEColumn is the CSV column every measurement file must carry.
const ValidationMAEColumn = "Validation MAE"

// Row is one measurement tagged with the category it belongs to in the
// current plot. Hue is the optional sub-group (the basis display label).
type Row struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
	Hue      string  `json:"hue,omitempty"`
}

// Table is an ordered, append-only set of measurement rows.
type Table struct {
	Rows []Row `json:"rows"`
}

// Summary holds the aggregate statistics of one category.
type Summary struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// FilterMean is the mean Validation MAE of one Garnoldi filter file.
type FilterMean struct {
	Filter catalog.Filter `json:"filter"`
	Mean   float64        `json:"mean"`
}
