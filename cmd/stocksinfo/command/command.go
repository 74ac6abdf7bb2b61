package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"stocksinfo/internal/application"
	"stocksinfo/internal/async"
	"stocksinfo/internal/bootstrap"
	"stocksinfo/internal/domain"
	"stocksinfo/internal/infrastructure/logx"
	"stocksinfo/internal/present"

	"github.com/urfave/cli/v2"
)

type Commander interface {
	Command() *cli.Command
}

var Commands = []Commander{
	Choose{},
	Quote{},
	Reset{},
	Token{},
	Interactive{},
}

func NewApp() *cli.App {
	app := &cli.App{
		Name:  "stocksinfo",
		Usage: "most active stocks and their quotes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "error",
				EnvVars: []string{"STOCKSINFO_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:  "no-spinner",
				Usage: "do not draw the busy indicator",
			},
		},
	}
	for _, c := range Commands {
		app.Commands = append(app.Commands, c.Command())
	}
	return app
}

// console serialises terminal output between the busy indicator and prompts.
type console struct {
	mu      sync.Mutex
	in      *bufio.Reader
	out     io.Writer
	spinner bool
}

func newConsole(c *cli.Context) *console {
	return &console{
		in:      bufio.NewReader(c.App.Reader),
		out:     c.App.Writer,
		spinner: !c.Bool("no-spinner"),
	}
}

func (c *console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptToken asks for a token on the console. An empty line cancels.
func (c *console) PromptToken(_ context.Context, alert application.Alert, current string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, "\r%s\n", present.Alert(alert))
	if current != "" {
		fmt.Fprintf(c.out, "current token: %s\n", current)
	}
	fmt.Fprint(c.out, "token (empty to cancel): ")
	line, err := c.readLine()
	if err != nil || line == "" {
		return "", false
	}
	return line, true
}

var frames = []string{"|", "/", "-", "\\"}

// busy runs fn through async and draws a spinner until it completes.
func busy[T any](ctx context.Context, con *console, label string, fn func(context.Context) (T, error)) (T, error) {
	ch := async.Go(ctx, fn)
	if !con.spinner {
		return async.Await(ctx, ch)
	}

	t := time.NewTicker(100 * time.Millisecond)
	defer t.Stop()
	for i := 0; ; i++ {
		select {
		case r := <-ch:
			con.mu.Lock()
			fmt.Fprintf(con.out, "\r%s\r", strings.Repeat(" ", len(label)+2))
			con.mu.Unlock()
			return r.Value, r.Err
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-t.C:
			con.mu.Lock()
			fmt.Fprintf(con.out, "\r%s %s", label, frames[i%len(frames)])
			con.mu.Unlock()
		}
	}
}

type session struct {
	app *bootstrap.CLI
	con *console
}

// open wires a flow for one command. close stops the connectivity monitor and
// releases the settings store.
func open(c *cli.Context) (*session, func(), error) {
	log, err := logx.New(c.String("log-level"))
	if err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("invalid log level: %v", err), 2)
	}
	con := newConsole(c)
	app, cleanup, err := bootstrap.InitCLI(c.Context, log, con)
	if err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("init: %v", err), 1)
	}

	ctx, cancel := context.WithCancel(c.Context)
	done := make(chan struct{})
	go func() {
		app.Monitor.Start(ctx)
		close(done)
	}()
	return &session{app: app, con: con}, func() {
		cancel()
		<-done
		cleanup()
		_ = log.Sync()
	}, nil
}

func (s *session) alert(err error) error {
	return cli.Exit(present.Alert(s.app.Flow.Alert(err)), 1)
}

func (s *session) printCompanies(companies []domain.Company) {
	for i, co := range companies {
		fmt.Fprintf(s.con.out, "%2d) %-6s %s\n", i+1, co.Symbol, co.Name)
	}
}

func (s *session) printQuote(q domain.Quote) {
	v := present.Quote(q)
	fmt.Fprintf(s.con.out, "%s (%s)\n  price:  %s\n  change: %s\n", v.Company, v.Symbol, v.Price, v.Change)
}
