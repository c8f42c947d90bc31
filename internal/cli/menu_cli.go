// Package cli implements the interactive console shell. It only reads
// lines, writes text, and dispatches; parsing and evaluation live in
// the problem package.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/norrisa/dataman/internal/bank"
	"github.com/norrisa/dataman/internal/config"
	"github.com/norrisa/dataman/internal/history"
)

// MenuCLI owns the interactive session state: the Memory Bank, the
// attempt history, and the console streams.
type MenuCLI struct {
	cfg          *config.Config
	bank         *bank.Bank
	session      *history.Session
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	green        *color.Color
	red          *color.Color
}

// NewMenuCLI creates an interactive CLI reading from in and writing to out.
func NewMenuCLI(cfg *config.Config, in io.Reader, out io.Writer) *MenuCLI {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	if !cfg.Display.UseColor {
		for _, c := range []*color.Color{bold, green, red} {
			c.DisableColor()
		}
	}

	var session *history.Session
	if cfg.History.Enabled {
		session = history.NewSession()
	}

	return &MenuCLI{
		cfg:          cfg,
		bank:         bank.New(cfg.Bank.Capacity),
		session:      session,
		stdinReader:  bufio.NewReader(in),
		stdoutWriter: out,
		bold:         bold,
		green:        green,
		red:          red,
	}
}

type Session interface {
	Session(ctx context.Context) error
}

var errEnd = errors.New("end")

// Run drives session loops until the session ends or the context is
// cancelled by an interrupt.
func (cli *MenuCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Session displays the main menu once and executes the selected action.
func (cli *MenuCLI) Session(ctx context.Context) error {
	cli.showMainMenu()
	command, err := cli.readLine("Enter a command: ")
	if err != nil {
		return err
	}

	switch command {
	case "1":
		return cli.runAnswerChecker()
	case "2":
		return cli.runMemoryBank()
	case "0":
		fmt.Fprintln(cli.stdoutWriter, "Exiting program.")
		cli.printSummary()
		return errEnd
	default:
		fmt.Fprintln(cli.stdoutWriter, "Invalid command")
		fmt.Fprintln(cli.stdoutWriter)
	}
	return nil
}

func (cli *MenuCLI) showMainMenu() {
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, "Dataman Main Menu")
	fmt.Fprintln(cli.stdoutWriter, "1. Answer Checker")
	fmt.Fprintln(cli.stdoutWriter, "2. Memory Bank")
	fmt.Fprintln(cli.stdoutWriter, "0. Exit")
}

// readLine prompts, reads one line, and trims surrounding whitespace.
// A clean end of input ends the session like the exit command does.
func (cli *MenuCLI) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(cli.stdoutWriter, prompt)
	}
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return trimmed, nil
			}
			return "", errEnd
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (cli *MenuCLI) printSummary() {
	if cli.session == nil {
		return
	}
	stats := cli.session.Summary()
	if stats.Total == 0 {
		return
	}

	fmt.Fprintf(cli.stdoutWriter, "Session %s: %d problem(s), ", cli.session.ID, stats.Total)
	_, _ = cli.green.Fprintf(cli.stdoutWriter, "%d correct", stats.Correct)
	fmt.Fprint(cli.stdoutWriter, ", ")
	_, _ = cli.red.Fprintf(cli.stdoutWriter, "%d incorrect", stats.Incorrect)
	if stats.Errored > 0 {
		fmt.Fprintf(cli.stdoutWriter, ", %d with errors", stats.Errored)
	}
	fmt.Fprintln(cli.stdoutWriter)
}
