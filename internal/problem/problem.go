// Package problem holds the arithmetic equation model: parsing,
// rendering, and evaluation. It performs no console I/O.
package problem

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Operator is the arithmetic operator symbol of a Problem.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
)

// Operators returns the supported operators in display order.
func Operators() []Operator {
	return []Operator{OpAdd, OpSub, OpMul, OpDiv}
}

// Supported reports whether the operator is one of the four supported symbols.
func (op Operator) Supported() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// Problem is an arithmetic equation: two integer operands, an
// operator, and the answer the user claims. Problems are immutable
// values; two problems are equal when all four fields are equal.
type Problem struct {
	Left   int
	Op     Operator
	Right  int
	Answer int
}

var (
	// ErrFormat reports that the equality marker token was not "=".
	// Parse still returns the populated Problem alongside it.
	ErrFormat = errors.New("invalid problem format")
	// ErrInvalidOperator reports an operator outside the supported set.
	ErrInvalidOperator = errors.New("invalid operator")
	// ErrDivideByZero reports a division with a zero divisor.
	ErrDivideByZero = errors.New("cannot divide by zero")
)

// ParseError reports a problem token that could not be parsed.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid problem token %q: %s", e.Token, e.Reason)
}

const problemTokenCount = 5

// Parse reads a problem from its five-token text form, "2 + 2 = 4".
// A wrong equality marker returns the populated Problem together with
// ErrFormat so callers can warn and keep going. A wrong token count or
// a non-integer operand fails with a *ParseError instead; nothing is
// defaulted to zero. The operator token is accepted as free text and
// left for the evaluator to judge.
func Parse(text string) (Problem, error) {
	tokens := strings.Fields(text)
	if len(tokens) != problemTokenCount {
		return Problem{}, &ParseError{
			Token:  strings.TrimSpace(text),
			Reason: fmt.Sprintf("expected %d tokens, got %d", problemTokenCount, len(tokens)),
		}
	}

	left, err := strconv.Atoi(tokens[0])
	if err != nil {
		return Problem{}, &ParseError{Token: tokens[0], Reason: "left operand is not an integer"}
	}
	right, err := strconv.Atoi(tokens[2])
	if err != nil {
		return Problem{}, &ParseError{Token: tokens[2], Reason: "right operand is not an integer"}
	}
	answer, err := strconv.Atoi(tokens[4])
	if err != nil {
		return Problem{}, &ParseError{Token: tokens[4], Reason: "answer is not an integer"}
	}

	p := Problem{Left: left, Op: Operator(tokens[1]), Right: right, Answer: answer}
	if tokens[3] != "=" {
		return p, ErrFormat
	}
	return p, nil
}

// String renders the full equation, "2 + 2 = 4". Parsing the result
// yields the original Problem back.
func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d = %d", p.Left, p.Op, p.Right, p.Answer)
}

// Question renders the equation with the answer omitted, "2 + 2 = ",
// for posing a stored problem without revealing its answer.
func (p Problem) Question() string {
	return fmt.Sprintf("%d %s %d = ", p.Left, p.Op, p.Right)
}

// Apply computes left op right with integer arithmetic. Division
// truncates toward zero and fails with ErrDivideByZero when right is
// zero; an unsupported operator fails with ErrInvalidOperator.
func Apply(op Operator, left, right int) (int, error) {
	switch op {
	case OpAdd:
		return left + right, nil
	case OpSub:
		return left - right, nil
	case OpMul:
		return left * right, nil
	case OpDiv:
		if right == 0 {
			return 0, fmt.Errorf("%d / %d: %w", left, right, ErrDivideByZero)
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("%q: %w", op, ErrInvalidOperator)
	}
}
