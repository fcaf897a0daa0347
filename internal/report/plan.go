package report

import "github.com/shopspring/decimal"

// Plan holds the parameters of the fixed query sequence.
type Plan struct {
	Genre        string
	AfterYear    int
	Author       string
	UpdateTitle  string
	NewPrice     decimal.Decimal
	DeleteTitle  string
	InStockAfter int
	TopN         int
	PerPage      int
	Pages        int
	ExplainTitle string
}

// DefaultPlan returns the parameters the report runs with.
func DefaultPlan() Plan {
	return Plan{
		Genre:        "Fiction",
		AfterYear:    1960,
		Author:       "Harper Lee",
		UpdateTitle:  "To Kill a Mockingbird",
		NewPrice:     decimal.RequireFromString("35.55"),
		DeleteTitle:  "The Great Gatsby",
		InStockAfter: 2010,
		TopN:         10,
		PerPage:      5,
		Pages:        2,
		ExplainTitle: "Wuthering Heights",
	}
}
