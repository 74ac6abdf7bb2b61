package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"stocksinfo/internal/domain"

	"go.uber.org/zap"
)

type State int

const (
	StateEmpty State = iota
	StateListing
	StateDisplaying
)

func (s State) String() string {
	switch s {
	case StateListing:
		return "listing"
	case StateDisplaying:
		return "displaying"
	default:
		return "empty"
	}
}

// SelectionFlow decides, for a requested symbol, whether the cached quote
// suffices or a remote fetch is required. It is not safe for concurrent use.
type SelectionFlow struct {
	client    QuoteClient
	cache     *QuoteCache
	tokens    *TokenStore
	prompter  TokenPrompter
	net       Connectivity
	log       *zap.Logger
	seedToken string

	state     State
	token     string
	quotes    map[string]domain.Quote
	companies []domain.Company
	current   *domain.Quote
}

type Option func(*SelectionFlow)

func WithPrompter(p TokenPrompter) Option { return func(f *SelectionFlow) { f.prompter = p } }
func WithConnectivity(c Connectivity) Option { return func(f *SelectionFlow) { f.net = c } }
func WithLogger(l *zap.Logger) Option { return func(f *SelectionFlow) { f.log = l } }
func WithSeedToken(token string) Option { return func(f *SelectionFlow) { f.seedToken = token } }

func NewSelectionFlow(client QuoteClient, cache *QuoteCache, tokens *TokenStore, opts ...Option) *SelectionFlow {
	f := &SelectionFlow{
		client: client,
		cache:  cache,
		tokens: tokens,
		quotes: map[string]domain.Quote{},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.log == nil {
		f.log = zap.NewNop()
	}
	f.log = f.log.With(zap.String("component", "selection_flow"))
	return f
}

// Restore loads the persisted cache and token. With cached quotes the flow
// starts in Listing, with the candidate list rebuilt from the cache.
func (f *SelectionFlow) Restore(ctx context.Context) {
	f.quotes = f.cache.Load(ctx)
	f.companies = companiesFromQuotes(f.quotes)
	f.current = nil
	f.state = StateEmpty
	if len(f.companies) > 0 {
		f.state = StateListing
	}

	token, err := f.tokens.Load(ctx)
	if err != nil {
		f.log.Warn("flow.token_load_failed", zap.Error(err))
	}
	if token == "" {
		token = f.seedToken
	}
	f.token = token
	f.log.Info("flow.restored",
		zap.Stringer("state", f.state),
		zap.Int("cached_quotes", len(f.quotes)),
		zap.Bool("token_set", f.token != ""),
	)
}

func (f *SelectionFlow) State() State  { return f.state }
func (f *SelectionFlow) Token() string { return f.token }

func (f *SelectionFlow) Companies() []domain.Company {
	out := make([]domain.Company, len(f.companies))
	copy(out, f.companies)
	return out
}

// Current returns the displayed quote, if any.
func (f *SelectionFlow) Current() (domain.Quote, bool) {
	if f.current == nil {
		return domain.Quote{}, false
	}
	return *f.current, true
}

// Alert classifies err using the current connectivity status and token.
func (f *SelectionFlow) Alert(err error) Alert {
	return Describe(err, f.connection(), f.token)
}

// Choose returns the candidate list, fetching the most active list when
// nothing is listed yet.
func (f *SelectionFlow) Choose(ctx context.Context) ([]domain.Company, error) {
	if f.state != StateEmpty {
		return f.Companies(), nil
	}
	companies, err := f.fetchMostActive(ctx)
	if err == nil || !errors.Is(err, domain.ErrAuth) {
		return companies, err
	}
	token, ok := f.promptToken(ctx, err)
	if !ok {
		return nil, err
	}
	return f.SubmitToken(ctx, token)
}

// Select shows the quote for symbol, from the cache when present.
func (f *SelectionFlow) Select(ctx context.Context, symbol string) (domain.Quote, error) {
	q, err := f.selectOnce(ctx, symbol)
	if err == nil || !errors.Is(err, domain.ErrAuth) {
		return q, err
	}
	token, ok := f.promptToken(ctx, err)
	if !ok {
		return domain.Quote{}, err
	}
	if _, err := f.SubmitToken(ctx, token); err != nil {
		return domain.Quote{}, err
	}
	return f.selectOnce(ctx, symbol)
}

// SubmitToken persists token and retries the most active list once with it.
func (f *SelectionFlow) SubmitToken(ctx context.Context, token string) ([]domain.Company, error) {
	f.token = strings.TrimSpace(token)
	if err := f.tokens.Save(ctx, f.token); err != nil {
		f.log.Error("flow.token_save_failed", zap.Error(err))
	}
	f.log.Info("flow.token_submitted", zap.Bool("token_set", f.token != ""))
	return f.fetchMostActive(ctx)
}

// Reset clears the cache and the candidate list and returns to Empty.
func (f *SelectionFlow) Reset(ctx context.Context) error {
	f.quotes = map[string]domain.Quote{}
	f.companies = nil
	f.current = nil
	f.state = StateEmpty
	if err := f.cache.Clear(ctx); err != nil {
		f.log.Error("flow.cache_clear_failed", zap.Error(err))
		return err
	}
	f.log.Info("flow.reset")
	return nil
}

func (f *SelectionFlow) fetchMostActive(ctx context.Context) ([]domain.Company, error) {
	companies, err := f.client.FetchMostActive(ctx, f.token)
	if err != nil {
		f.log.Warn("flow.most_active_failed", zap.Error(err))
		return nil, err
	}
	if len(companies) == 0 {
		f.log.Warn("flow.most_active_empty")
		return nil, domain.ErrEmptyList
	}
	f.companies = companies
	f.current = nil
	f.state = StateListing
	f.log.Info("flow.listing", zap.Int("companies", len(companies)))
	return f.Companies(), nil
}

func (f *SelectionFlow) selectOnce(ctx context.Context, symbol string) (domain.Quote, error) {
	if f.state == StateEmpty {
		return domain.Quote{}, domain.ErrNothingListed
	}
	symbol = domain.NormalizeSymbol(symbol)
	if symbol == "" {
		return domain.Quote{}, fmt.Errorf("%w: empty symbol", ErrBadRequest)
	}
	log := f.log.With(zap.String("symbol", symbol))

	if q, ok := f.quotes[symbol]; ok {
		log.Debug("flow.cache_hit")
		f.display(q)
		return q, nil
	}

	q, err := f.client.FetchQuote(ctx, symbol, f.token)
	if err != nil {
		log.Warn("flow.quote_failed", zap.Error(err))
		return domain.Quote{}, err
	}
	f.quotes[q.Symbol] = q
	if err := f.cache.Save(ctx, f.quotes); err != nil {
		log.Error("flow.cache_save_failed", zap.Error(err))
	}
	log.Info("flow.quote_fetched", zap.Float64("price", q.Price))
	f.display(q)
	return q, nil
}

func (f *SelectionFlow) display(q domain.Quote) {
	f.current = &q
	f.state = StateDisplaying
	for _, c := range f.companies {
		if c.Symbol == q.Symbol {
			return
		}
	}
	f.companies = append(f.companies, domain.Company{Name: q.CompanyName, Symbol: q.Symbol})
}

func (f *SelectionFlow) promptToken(ctx context.Context, cause error) (string, bool) {
	if f.prompter == nil {
		return "", false
	}
	token, ok := f.prompter.PromptToken(ctx, f.Alert(cause), f.token)
	f.log.Info("flow.token_prompted", zap.Bool("confirmed", ok))
	return token, ok
}

func (f *SelectionFlow) connection() domain.Connection {
	if f.net == nil {
		return domain.Connection{Connected: true, Type: domain.ConnectionUnknown}
	}
	return f.net.Status()
}

func companiesFromQuotes(quotes map[string]domain.Quote) []domain.Company {
	out := make([]domain.Company, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, domain.Company{Name: q.CompanyName, Symbol: q.Symbol})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
