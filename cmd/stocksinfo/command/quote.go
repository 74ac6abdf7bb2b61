package command

import (
	"context"

	"stocksinfo/internal/application"
	"stocksinfo/internal/domain"

	"github.com/urfave/cli/v2"
)

type Quote struct{}

func (Quote) Command() *cli.Command {
	return &cli.Command{
		Name:      "quote",
		Aliases:   []string{"q"},
		Usage:     "show the quote for SYMBOL",
		ArgsUsage: "SYMBOL",
		Action: func(c *cli.Context) error {
			symbol := c.Args().First()
			if symbol == "" {
				return cli.Exit("quote: SYMBOL is required", 2)
			}
			s, closeFn, err := open(c)
			if err != nil {
				return err
			}
			defer closeFn()

			flow := s.app.Flow
			q, err := busy(c.Context, s.con, "loading", func(ctx context.Context) (domain.Quote, error) {
				// A fresh process has nothing listed unless quotes were cached.
				if flow.State() == application.StateEmpty {
					if _, err := flow.Choose(ctx); err != nil {
						return domain.Quote{}, err
					}
				}
				return flow.Select(ctx, symbol)
			})
			if err != nil {
				return s.alert(err)
			}
			s.printQuote(q)
			return nil
		},
	}
}
