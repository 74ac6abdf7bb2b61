package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"stocksinfo/internal/domain"
	"stocksinfo/internal/present"

	"github.com/urfave/cli/v2"
)

type Interactive struct{}

func (Interactive) Command() *cli.Command {
	return &cli.Command{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "browse companies: a number or symbol selects, r resets, q quits",
		Action: func(c *cli.Context) error {
			s, closeFn, err := open(c)
			if err != nil {
				return err
			}
			defer closeFn()
			return s.loop(c.Context)
		},
	}
}

func (s *session) loop(ctx context.Context) error {
	flow := s.app.Flow
	s.choose(ctx)
	for {
		fmt.Fprint(s.con.out, "> ")
		line, err := s.con.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.con.out)
			return nil
		}
		if err != nil {
			return err
		}

		switch line {
		case "":
			continue
		case "q":
			return nil
		case "l":
			s.printCompanies(flow.Companies())
			continue
		case "r":
			if err := flow.Reset(ctx); err != nil {
				fmt.Fprintf(s.con.out, "reset: %v\n", err)
			}
			s.choose(ctx)
			continue
		}

		symbol := line
		if n, err := strconv.Atoi(line); err == nil {
			companies := flow.Companies()
			if n < 1 || n > len(companies) {
				fmt.Fprintf(s.con.out, "pick 1-%d\n", len(companies))
				continue
			}
			symbol = companies[n-1].Symbol
		}
		q, err := busy(ctx, s.con, "loading", func(ctx context.Context) (domain.Quote, error) {
			return flow.Select(ctx, symbol)
		})
		if err != nil {
			fmt.Fprintln(s.con.out, present.Alert(flow.Alert(err)))
			continue
		}
		s.printQuote(q)
	}
}

func (s *session) choose(ctx context.Context) {
	companies, err := busy(ctx, s.con, "loading", func(ctx context.Context) ([]domain.Company, error) {
		return s.app.Flow.Choose(ctx)
	})
	if err != nil {
		fmt.Fprintln(s.con.out, present.Alert(s.app.Flow.Alert(err)))
		return
	}
	s.printCompanies(companies)
}
