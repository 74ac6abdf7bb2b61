package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"stocksinfo/internal/application"
	"stocksinfo/internal/async"
	"stocksinfo/internal/domain"
	"stocksinfo/internal/infrastructure/httpx"

	"go.uber.org/zap"
)

const DefaultIEXBaseURL = "https://cloud.iexapis.com/stable"

// IEXCloud fetches quotes from an IEX Cloud compatible API. A single request
// is attempted per call.
type IEXCloud struct {
	BaseURL string
	Client  *httpx.Client
	Log     *zap.Logger
}

var _ application.QuoteClient = (*IEXCloud)(nil)

type iexQuote struct {
	CompanyName   *string  `json:"companyName"`
	Symbol        *string  `json:"symbol"`
	LatestPrice   *float64 `json:"latestPrice"`
	Change        *float64 `json:"change"`
	ChangePercent *float64 `json:"changePercent"`
}

func (p *IEXCloud) FetchMostActive(ctx context.Context, token string) ([]domain.Company, error) {
	body, err := p.get(ctx, token, "stock", "market", "list", "mostactive", "quote")
	if err != nil {
		return nil, err
	}
	return parseMostActive(body)
}

func (p *IEXCloud) FetchQuote(ctx context.Context, symbol, token string) (domain.Quote, error) {
	if strings.TrimSpace(symbol) == "" {
		return domain.Quote{}, fmt.Errorf("iexcloud: %w: empty symbol", application.ErrBadRequest)
	}
	body, err := p.get(ctx, token, "stock", url.PathEscape(symbol), "quote")
	if err != nil {
		return domain.Quote{}, err
	}
	return parseQuote(body)
}

// MostActiveAsync is FetchMostActive delivered on a channel. Discarding the
// channel abandons the result.
func (p *IEXCloud) MostActiveAsync(ctx context.Context, token string) <-chan async.Result[[]domain.Company] {
	return async.Go(ctx, func(ctx context.Context) ([]domain.Company, error) {
		return p.FetchMostActive(ctx, token)
	})
}

// QuoteAsync is FetchQuote delivered on a channel.
func (p *IEXCloud) QuoteAsync(ctx context.Context, symbol, token string) <-chan async.Result[domain.Quote] {
	return async.Go(ctx, func(ctx context.Context) (domain.Quote, error) {
		return p.FetchQuote(ctx, symbol, token)
	})
}

func (p *IEXCloud) get(ctx context.Context, token string, segments ...string) ([]byte, error) {
	base := p.BaseURL
	if base == "" {
		base = DefaultIEXBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("iexcloud: invalid base url: %w", err)
	}
	u = u.JoinPath(segments...)
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	client := p.Client
	if client == nil {
		client = &httpx.Client{Log: p.Log}
	}
	status, body, err := client.Get(ctx, u.String())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("iexcloud: %w", ctxErr)
		}
		return nil, fmt.Errorf("iexcloud: %w: %v", domain.ErrNetwork, err)
	}
	switch status {
	case http.StatusOK:
		return body, nil
	case http.StatusBadRequest, http.StatusForbidden:
		return nil, fmt.Errorf("iexcloud: %w (status %d)", domain.ErrAuth, status)
	default:
		return nil, fmt.Errorf("iexcloud: %w", &domain.HTTPError{StatusCode: status})
	}
}

// parseMostActive keeps the elements carrying both string fields, in array
// order, and skips everything else.
func parseMostActive(body []byte) ([]domain.Company, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(body), []byte("[")) {
		return nil, fmt.Errorf("iexcloud: %w: most active body is not an array", domain.ErrInvalidResponse)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("iexcloud: %w: %v", domain.ErrInvalidResponse, err)
	}
	out := make([]domain.Company, 0, len(items))
	for _, raw := range items {
		var item map[string]any
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		symbol, ok := item["symbol"].(string)
		if !ok {
			continue
		}
		name, ok := item["companyName"].(string)
		if !ok {
			continue
		}
		out = append(out, domain.Company{Name: name, Symbol: symbol})
	}
	return out, nil
}

func parseQuote(body []byte) (domain.Quote, error) {
	var w iexQuote
	if err := json.Unmarshal(body, &w); err != nil {
		return domain.Quote{}, fmt.Errorf("iexcloud: %w: %v", domain.ErrInvalidResponse, err)
	}
	q, err := w.toDomain()
	if err != nil {
		return domain.Quote{}, fmt.Errorf("iexcloud: %w: %v", domain.ErrInvalidResponse, err)
	}
	return q, nil
}

// toDomain rejects zero price and zero change percent as well as missing
// fields; a flat stock is therefore reported as invalid.
func (w iexQuote) toDomain() (domain.Quote, error) {
	var problems []string
	if w.CompanyName == nil || *w.CompanyName == "" {
		problems = append(problems, "companyName")
	}
	if w.Symbol == nil || *w.Symbol == "" {
		problems = append(problems, "symbol")
	}
	if w.LatestPrice == nil || *w.LatestPrice == 0 || *w.LatestPrice < 0 {
		problems = append(problems, "latestPrice")
	}
	if w.Change == nil {
		problems = append(problems, "change")
	}
	if w.ChangePercent == nil || *w.ChangePercent == 0 {
		problems = append(problems, "changePercent")
	}
	if len(problems) > 0 {
		return domain.Quote{}, errors.New("missing or invalid fields: " + strings.Join(problems, ", "))
	}
	return domain.Quote{
		Symbol:             *w.Symbol,
		CompanyName:        *w.CompanyName,
		Price:              *w.LatestPrice,
		PriceChange:        *w.Change,
		PriceChangePercent: *w.ChangePercent,
	}, nil
}
