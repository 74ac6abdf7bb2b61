// Package present turns quotes and alerts into display strings.
package present

import (
	"fmt"

	"stocksinfo/internal/application"
	"stocksinfo/internal/domain"

	"github.com/shopspring/decimal"
)

type Direction int

const (
	Flat Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "flat"
	}
}

// QuoteView is a quote ready for display.
type QuoteView struct {
	Symbol    string    `json:"symbol"`
	Company   string    `json:"companyName"`
	Price     string    `json:"price"`
	Change    string    `json:"change"`
	Direction Direction `json:"-"`
}

func Quote(q domain.Quote) QuoteView {
	return QuoteView{
		Symbol:    q.Symbol,
		Company:   q.CompanyName,
		Price:     Price(q.Price),
		Change:    Change(q.PriceChange, q.PriceChangePercent),
		Direction: DirectionOf(q.PriceChange),
	}
}

func Price(p float64) string {
	return decimal.NewFromFloat(p).String() + " USD"
}

// Change renders "+1.5 (2.00%)↑", "-2.5 (1.64%)↓" or "0 (0.00%)".
func Change(change, percent float64) string {
	c := decimal.NewFromFloat(change)
	pct := decimal.NewFromFloat(percent).Mul(decimal.NewFromInt(100)).Abs().StringFixed(2)
	switch DirectionOf(change) {
	case Up:
		return fmt.Sprintf("+%s (%s%%)↑", c.String(), pct)
	case Down:
		return fmt.Sprintf("%s (%s%%)↓", c.String(), pct)
	default:
		return fmt.Sprintf("%s (%s%%)", c.String(), pct)
	}
}

func DirectionOf(change float64) Direction {
	switch {
	case change > 0:
		return Up
	case change < 0:
		return Down
	default:
		return Flat
	}
}

// Alert renders "title: message".
func Alert(a application.Alert) string {
	if a.Message == "" {
		return a.Title
	}
	return a.Title + ": " + a.Message
}
