//go:build wireinject

package bootstrap

import (
	"context"

	"stocksinfo/internal/application"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var infraSet = wire.NewSet(
	ProvideConfig,
	ProvideSettings,
	ProvideHTTPClient,
	ProvideQuoteClient,
	ProvideMonitor,
	ProvideFlow,
)

// API injector: builds *API + Cleanup
func InitAPI(ctx context.Context) (*API, func(), error) {
	wire.Build(
		ProvideLogger,
		infraSet,
		ProvideNoPrompter,
		ProvideAPIServer,
		ProvideAPI,
	)
	return nil, nil, nil
}

// CLI injector: builds *CLI + Cleanup
func InitCLI(ctx context.Context, log *zap.Logger, prompter application.TokenPrompter) (*CLI, func(), error) {
	wire.Build(
		infraSet,
		ProvideCLI,
	)
	return nil, nil, nil
}
