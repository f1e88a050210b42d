package models

import "github.com/shopspring/decimal"

func init() {
	// Money renders as a JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true
}
