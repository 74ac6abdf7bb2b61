package command

import (
	"context"
	"fmt"

	"stocksinfo/internal/application"
	"stocksinfo/internal/domain"

	"github.com/urfave/cli/v2"
)

type Token struct{}

func (Token) Command() *cli.Command {
	return &cli.Command{
		Name:      "token",
		Usage:     "set the API token and reload the company list",
		ArgsUsage: "[VALUE]",
		Action: func(c *cli.Context) error {
			s, closeFn, err := open(c)
			if err != nil {
				return err
			}
			defer closeFn()

			token := c.Args().First()
			if token == "" {
				var ok bool
				token, ok = s.con.PromptToken(c.Context, application.Alert{Title: "Enter API token"}, s.app.Flow.Token())
				if !ok {
					fmt.Fprintln(s.con.out, "cancelled")
					return nil
				}
			}

			companies, err := busy(c.Context, s.con, "loading", func(ctx context.Context) ([]domain.Company, error) {
				return s.app.Flow.SubmitToken(ctx, token)
			})
			if err != nil {
				return s.alert(err)
			}
			s.printCompanies(companies)
			return nil
		},
	}
}
