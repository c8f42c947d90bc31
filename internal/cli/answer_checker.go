package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/norrisa/dataman/internal/history"
	"github.com/norrisa/dataman/internal/problem"
)

// runAnswerChecker reads one problem and judges it against its own
// answer.
func (cli *MenuCLI) runAnswerChecker() error {
	fmt.Fprintln(cli.stdoutWriter, "Answer Checker")
	fmt.Fprintln(cli.stdoutWriter, "Problem format is: 2 + 2 = 4")

	p, ok, err := cli.readProblem()
	if err != nil || !ok {
		return err
	}

	verdict := cli.evaluate(p, p.Answer)
	cli.record(p, p.Answer, verdict, history.ModeChecker)
	cli.printVerdict(verdict)
	fmt.Fprintln(cli.stdoutWriter)
	return nil
}

// readProblem reads and parses one problem line. The wrong equality
// marker is warned about and the best-effort problem kept; any other
// parse failure is reported and ok is false.
func (cli *MenuCLI) readProblem() (p problem.Problem, ok bool, err error) {
	line, err := cli.readLine("Enter math problem: ")
	if err != nil {
		return problem.Problem{}, false, err
	}

	p, parseErr := problem.Parse(line)
	if parseErr != nil {
		if !errors.Is(parseErr, problem.ErrFormat) {
			fmt.Fprintf(cli.stdoutWriter, "ERROR: %v\n", parseErr)
			fmt.Fprintln(cli.stdoutWriter)
			return problem.Problem{}, false, nil
		}
		fmt.Fprintln(cli.stdoutWriter, "Invalid problem format")
	}
	slog.Default().Debug("parsed problem", slog.String("problem", p.String()))

	fmt.Fprintf(cli.stdoutWriter, "You entered: %s\n", p)
	return p, true, nil
}

// evaluate applies the configured operator filter before delegating to
// the evaluator.
func (cli *MenuCLI) evaluate(p problem.Problem, candidate int) problem.Verdict {
	if p.Op.Supported() && !cli.cfg.Checker.EnabledOperator(p.Op) {
		fmt.Fprintf(cli.stdoutWriter, "Operator %q is not enabled\n", p.Op)
		return problem.VerdictIncorrect
	}

	verdict := problem.CheckAnswer(p, candidate)
	slog.Default().Debug("evaluated problem",
		slog.String("problem", p.String()),
		slog.Int("candidate", candidate),
		slog.String("verdict", verdict.String()),
	)
	return verdict
}

func (cli *MenuCLI) record(p problem.Problem, candidate int, verdict problem.Verdict, mode history.Mode) {
	if cli.session == nil {
		return
	}
	cli.session.Record(p, candidate, verdict, mode)
}

func (cli *MenuCLI) printVerdict(verdict problem.Verdict) {
	switch verdict {
	case problem.VerdictCorrect:
		_, _ = cli.green.Fprintln(cli.stdoutWriter, "Correct!")
	case problem.VerdictIncorrect:
		_, _ = cli.red.Fprintln(cli.stdoutWriter, "Incorrect.")
	case problem.VerdictInvalidOperator:
		fmt.Fprintln(cli.stdoutWriter, "Invalid operator")
		_, _ = cli.red.Fprintln(cli.stdoutWriter, "Incorrect.")
	case problem.VerdictDivideByZero:
		_, _ = cli.red.Fprintln(cli.stdoutWriter, "Cannot divide by zero")
	}
}
