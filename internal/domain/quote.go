package domain

import "strings"

// Quote is a point-in-time price record for one ticker symbol.
type Quote struct {
	Symbol             string  `json:"symbol"`
	CompanyName        string  `json:"companyName"`
	Price              float64 `json:"price"`
	PriceChange        float64 `json:"priceChange"`
	PriceChangePercent float64 `json:"priceChangePercent"`
}

// Company is one entry of the most active list.
type Company struct {
	Name   string `json:"companyName"`
	Symbol string `json:"symbol"`
}

// NormalizeSymbol trims and upper-cases a ticker symbol.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
