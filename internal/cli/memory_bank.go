package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/norrisa/dataman/internal/bank"
	"github.com/norrisa/dataman/internal/history"
)

// runMemoryBank loops on the Memory Bank menu until the user goes
// back. The bank itself is owned by the MenuCLI, so problems survive
// leaving and re-entering this menu within one program run.
func (cli *MenuCLI) runMemoryBank() error {
	for {
		cli.showMemoryBankMenu()
		command, err := cli.readLine("Enter a command: ")
		if err != nil {
			return err
		}

		switch command {
		case "1":
			if err := cli.addProblem(); err != nil {
				return err
			}
		case "2":
			cli.listProblems()
		case "3":
			if err := cli.solveProblem(); err != nil {
				return err
			}
		case "0":
			fmt.Fprintln(cli.stdoutWriter)
			return nil
		default:
			fmt.Fprintln(cli.stdoutWriter, "Invalid command")
			fmt.Fprintln(cli.stdoutWriter)
		}
	}
}

func (cli *MenuCLI) showMemoryBankMenu() {
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, "Memory Bank Menu")
	fmt.Fprintln(cli.stdoutWriter, "1. Add Problem")
	fmt.Fprintln(cli.stdoutWriter, "2. List Problems")
	fmt.Fprintln(cli.stdoutWriter, "3. Solve Problem")
	fmt.Fprintln(cli.stdoutWriter, "0. Back")
}

func (cli *MenuCLI) addProblem() error {
	fmt.Fprintln(cli.stdoutWriter, "Problem format is: 2 + 2 = 4")
	p, ok, err := cli.readProblem()
	if err != nil || !ok {
		return err
	}

	if appendErr := cli.bank.Append(p); appendErr != nil {
		if errors.Is(appendErr, bank.ErrBankFull) {
			fmt.Fprintf(cli.stdoutWriter, "ERROR: %v\n", appendErr)
			fmt.Fprintln(cli.stdoutWriter)
			return nil
		}
		return appendErr
	}
	fmt.Fprintln(cli.stdoutWriter, "Problem added to memory bank.")
	fmt.Fprintln(cli.stdoutWriter)
	return nil
}

func (cli *MenuCLI) listProblems() {
	problems := cli.bank.List()
	if len(problems) == 0 {
		fmt.Fprintln(cli.stdoutWriter, "No problems in memory bank.")
		fmt.Fprintln(cli.stdoutWriter)
		return
	}

	for i, p := range problems {
		fmt.Fprintf(cli.stdoutWriter, "%d. %s\n", i+1, p)
	}
	fmt.Fprintln(cli.stdoutWriter)
}

// solveProblem poses a stored problem without its answer and judges
// the user's candidate against it.
func (cli *MenuCLI) solveProblem() error {
	token, err := cli.readLine("Problem number: ")
	if err != nil {
		return err
	}
	index, convErr := strconv.Atoi(token)
	if convErr != nil {
		fmt.Fprintf(cli.stdoutWriter, "Invalid problem number %q\n", token)
		fmt.Fprintln(cli.stdoutWriter)
		return nil
	}

	p, getErr := cli.bank.Get(index)
	if getErr != nil {
		var outOfRange *bank.OutOfRangeError
		if errors.As(getErr, &outOfRange) {
			fmt.Fprintf(cli.stdoutWriter, "ERROR: %v\n", outOfRange)
			fmt.Fprintln(cli.stdoutWriter)
			return nil
		}
		return getErr
	}

	fmt.Fprintf(cli.stdoutWriter, "Problem %d: ", index)
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, p.Question())

	answerToken, err := cli.readLine("Your answer: ")
	if err != nil {
		return err
	}
	candidate, convErr := strconv.Atoi(answerToken)
	if convErr != nil {
		fmt.Fprintf(cli.stdoutWriter, "Invalid answer %q\n", answerToken)
		fmt.Fprintln(cli.stdoutWriter)
		return nil
	}

	verdict := cli.evaluate(p, candidate)
	cli.record(p, candidate, verdict, history.ModeBankSolve)
	cli.printVerdict(verdict)
	fmt.Fprintln(cli.stdoutWriter)
	return nil
}
