package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/norrisa/dataman/internal/config"
	"github.com/norrisa/dataman/internal/problem"
)

// CheckOnce evaluates a single problem text and writes the same
// verdict text the interactive checker uses. It returns an error when
// the problem cannot be parsed or the answer is not correct, so
// callers can exit non-zero.
func CheckOnce(cfg *config.Config, out io.Writer, text string) error {
	cli := NewMenuCLI(cfg, strings.NewReader(""), out)

	p, parseErr := problem.Parse(text)
	if parseErr != nil {
		if !errors.Is(parseErr, problem.ErrFormat) {
			return fmt.Errorf("cannot parse problem: %w", parseErr)
		}
		fmt.Fprintln(out, "Invalid problem format")
	}
	fmt.Fprintf(out, "You entered: %s\n", p)

	verdict := cli.evaluate(p, p.Answer)
	cli.printVerdict(verdict)
	if !verdict.Correct() {
		return fmt.Errorf("problem %q is %s", p.String(), verdict)
	}
	return nil
}
