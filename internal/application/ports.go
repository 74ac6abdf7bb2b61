package application

import (
	"context"

	"stocksinfo/internal/domain"
)

//go:generate mockgen -package=application -destination=mock_quote_client_test.go stocksinfo/internal/application QuoteClient

type QuoteClient interface {
	FetchMostActive(ctx context.Context, token string) ([]domain.Company, error)
	FetchQuote(ctx context.Context, symbol, token string) (domain.Quote, error)
}

// Settings is process-wide key/value storage. Get returns ErrNotFound for
// absent keys; Delete of an absent key is not an error.
type Settings interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Connectivity interface {
	Status() domain.Connection
}

// TokenPrompter asks the user for a new API token after an auth failure.
// ok is false when the user cancels.
type TokenPrompter interface {
	PromptToken(ctx context.Context, alert Alert, current string) (token string, ok bool)
}
