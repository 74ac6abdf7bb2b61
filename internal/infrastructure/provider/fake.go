package provider

import (
	"context"
	"hash/fnv"

	"stocksinfo/internal/application"
	"stocksinfo/internal/domain"
)

// Ensure Fake implements application.QuoteClient.
var _ application.QuoteClient = (*Fake)(nil)

// Fake serves a fixed most active list and deterministic quotes. It ignores
// the token and is meant for offline runs.
type Fake struct {
	companies []domain.Company
}

func NewFake() *Fake {
	return &Fake{companies: []domain.Company{
		{Name: "Apple Inc", Symbol: "AAPL"},
		{Name: "Tesla Inc", Symbol: "TSLA"},
		{Name: "Ford Motor Co.", Symbol: "F"},
		{Name: "Advanced Micro Devices Inc.", Symbol: "AMD"},
		{Name: "NIO Inc - ADR", Symbol: "NIO"},
	}}
}

func (f *Fake) FetchMostActive(context.Context, string) ([]domain.Company, error) {
	out := make([]domain.Company, len(f.companies))
	copy(out, f.companies)
	return out, nil
}

func (f *Fake) FetchQuote(_ context.Context, symbol, _ string) (domain.Quote, error) {
	symbol = domain.NormalizeSymbol(symbol)
	name := symbol
	for _, c := range f.companies {
		if c.Symbol == symbol {
			name = c.Name
		}
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(symbol))
	n := h.Sum32()
	price := 10 + float64(n%50000)/100
	pct := (float64(n%801) - 400) / 10000
	if pct == 0 {
		pct = 0.0001
	}
	return domain.Quote{
		Symbol:             symbol,
		CompanyName:        name,
		Price:              price,
		PriceChange:        price * pct,
		PriceChangePercent: pct,
	}, nil
}
