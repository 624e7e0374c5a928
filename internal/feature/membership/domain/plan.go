// Package domain holds membership domain types that are not persisted.
package domain

// Plan describes one entry of the static membership plan catalog.
type Plan struct {
	ID           string
	Amount       float64
	Currency     string
	DurationDays int
}

// plans is the fixed catalog consumed by the membership activation route.
// Prices are in CNY; durations drive the expires_at computation.
var plans = map[string]Plan{
	"monthly":   {ID: "monthly", Amount: 188, Currency: "CNY", DurationDays: 30},
	"quarterly": {ID: "quarterly", Amount: 564, Currency: "CNY", DurationDays: 90},
	"half-year": {ID: "half-year", Amount: 1128, Currency: "CNY", DurationDays: 180},
	"yearly":    {ID: "yearly", Amount: 2256, Currency: "CNY", DurationDays: 365},
}

// PlanByID looks up a plan in the catalog.
func PlanByID(id string) (Plan, bool) {
	p, ok := plans[id]
	return p, ok
}
