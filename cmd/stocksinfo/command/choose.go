package command

import (
	"context"

	"stocksinfo/internal/domain"

	"github.com/urfave/cli/v2"
)

type Choose struct{}

func (Choose) Command() *cli.Command {
	return &cli.Command{
		Name:    "choose",
		Aliases: []string{"c"},
		Usage:   "list the most active companies",
		Action: func(c *cli.Context) error {
			s, closeFn, err := open(c)
			if err != nil {
				return err
			}
			defer closeFn()

			companies, err := busy(c.Context, s.con, "loading", func(ctx context.Context) ([]domain.Company, error) {
				return s.app.Flow.Choose(ctx)
			})
			if err != nil {
				return s.alert(err)
			}
			s.printCompanies(companies)
			return nil
		},
	}
}
