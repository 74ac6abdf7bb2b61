package httpserver

import (
	"context"
	"fmt"
	"sync"

	"stocksinfo/internal/application"
	"stocksinfo/internal/domain"
)

var _ application.QuoteClient = (*fakeQuoteClient)(nil)
var _ application.Settings = (*memSettings)(nil)

// fakeQuoteClient accepts only validToken and serves fixed data.
type fakeQuoteClient struct {
	validToken string
	companies  []domain.Company
	quotes     map[string]domain.Quote
	err        error

	listCalls  int
	quoteCalls int
}

func (f *fakeQuoteClient) FetchMostActive(_ context.Context, token string) ([]domain.Company, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	if token != f.validToken {
		return nil, fmt.Errorf("fake: %w (status 403)", domain.ErrAuth)
	}
	return f.companies, nil
}

func (f *fakeQuoteClient) FetchQuote(_ context.Context, symbol, token string) (domain.Quote, error) {
	f.quoteCalls++
	if f.err != nil {
		return domain.Quote{}, f.err
	}
	if token != f.validToken {
		return domain.Quote{}, fmt.Errorf("fake: %w (status 403)", domain.ErrAuth)
	}
	q, ok := f.quotes[symbol]
	if !ok {
		return domain.Quote{}, &domain.HTTPError{StatusCode: 404}
	}
	return q, nil
}

type memSettings struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemSettings() *memSettings { return &memSettings{data: map[string][]byte{}} }

func (m *memSettings) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, application.ErrNotFound
	}
	return v, nil
}

func (m *memSettings) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memSettings) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func appleFixture() *fakeQuoteClient {
	return &fakeQuoteClient{
		validToken: "abc123",
		companies: []domain.Company{
			{Name: "Apple Inc.", Symbol: "AAPL"},
			{Name: "Advanced Micro Devices Inc.", Symbol: "AMD"},
		},
		quotes: map[string]domain.Quote{
			"AAPL": {Symbol: "AAPL", CompanyName: "Apple Inc.", Price: 150.0, PriceChange: -2.5, PriceChangePercent: -0.0164},
		},
	}
}
