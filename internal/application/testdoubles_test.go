package application

import (
	"context"
	"errors"

	"stocksinfo/internal/domain"
)

var (
	ErrStore = errors.New("store error")
)

type fakeSettings struct {
	data   map[string][]byte
	err    error
	writes int
}

func (f *fakeSettings) Get(_ context.Context, key string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (f *fakeSettings) Set(_ context.Context, key string, value []byte) error {
	if f.err != nil {
		return f.err
	}
	if f.data == nil {
		f.data = map[string][]byte{}
	}
	f.writes++
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeSettings) Delete(_ context.Context, key string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.data, key)
	return nil
}

type fakeConnectivity struct{ conn domain.Connection }

func (f fakeConnectivity) Status() domain.Connection { return f.conn }

type fakePrompter struct {
	token  string
	ok     bool
	calls  int
	alerts []Alert
}

func (f *fakePrompter) PromptToken(_ context.Context, alert Alert, _ string) (string, bool) {
	f.calls++
	f.alerts = append(f.alerts, alert)
	return f.token, f.ok
}

func appleQuote() domain.Quote {
	return domain.Quote{
		Symbol:             "AAPL",
		CompanyName:        "Apple Inc.",
		Price:              150.0,
		PriceChange:        -2.5,
		PriceChangePercent: -0.0164,
	}
}
