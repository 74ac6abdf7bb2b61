package pg_test

import (
	"context"
	"testing"

	"stocksinfo/internal/application"
	"stocksinfo/internal/domain"
	"stocksinfo/internal/infrastructure/pg"

	"github.com/stretchr/testify/require"
)

func exerciseSettings(t *testing.T, db *pg.DB) {
	t.Helper()
	ctx := context.Background()
	repo := pg.NewSettingsRepo(db)
	key := "test." + t.Name()

	_, err := repo.Get(ctx, key)
	require.ErrorIs(t, err, application.ErrNotFound)

	require.NoError(t, repo.Set(ctx, key, []byte("v1")))
	require.NoError(t, repo.Set(ctx, key, []byte("v2")))
	v, err := repo.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)

	require.NoError(t, repo.Delete(ctx, key))
	require.NoError(t, repo.Delete(ctx, key))
	_, err = repo.Get(ctx, key)
	require.ErrorIs(t, err, application.ErrNotFound)
	require.NoError(t, repo.Ping(ctx))
}

func TestSettingsRepo_Container(t *testing.T) {
	exerciseSettings(t, withPostgres(t))
}

func TestSettingsRepo_DatabaseURL(t *testing.T) {
	exerciseSettings(t, fromDatabaseURL(t))
}

func TestSettingsRepo_BacksQuoteCache(t *testing.T) {
	db := withPostgres(t)
	ctx := context.Background()

	cache := application.NewQuoteCache(pg.NewSettingsRepo(db), nil)
	quotes := map[string]domain.Quote{
		"AAPL": {Symbol: "AAPL", CompanyName: "Apple Inc.", Price: 150, PriceChange: -2.5, PriceChangePercent: -0.0164},
	}
	require.NoError(t, cache.Save(ctx, quotes))
	require.Equal(t, quotes, cache.Load(ctx))
}
