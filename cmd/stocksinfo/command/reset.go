package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

type Reset struct{}

func (Reset) Command() *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "clear cached quotes",
		Action: func(c *cli.Context) error {
			s, closeFn, err := open(c)
			if err != nil {
				return err
			}
			defer closeFn()

			if err := s.app.Flow.Reset(c.Context); err != nil {
				return cli.Exit(fmt.Sprintf("reset: %v", err), 1)
			}
			fmt.Fprintln(s.con.out, "cache cleared")
			return nil
		},
	}
}
