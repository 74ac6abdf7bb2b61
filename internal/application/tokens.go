package application

import (
	"context"
	"errors"
)

// TokenKey is the settings key holding the API token.
const TokenKey = "api.token"

type TokenStore struct {
	settings Settings
}

func NewTokenStore(settings Settings) *TokenStore { return &TokenStore{settings: settings} }

// Load returns "" when no token was ever saved.
func (t *TokenStore) Load(ctx context.Context) (string, error) {
	v, err := t.settings.Get(ctx, TokenKey)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (t *TokenStore) Save(ctx context.Context, token string) error {
	return t.settings.Set(ctx, TokenKey, []byte(token))
}
