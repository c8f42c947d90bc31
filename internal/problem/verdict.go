package problem

import "errors"

// Verdict is the outcome of evaluating a Problem against an answer.
// Evaluation failures are verdicts of their own so callers can tell
// "the answer is wrong" apart from "the problem cannot be evaluated".
type Verdict int

const (
	VerdictIncorrect Verdict = iota
	VerdictCorrect
	VerdictInvalidOperator
	VerdictDivideByZero
)

// Correct reports whether the verdict is VerdictCorrect.
func (v Verdict) Correct() bool {
	return v == VerdictCorrect
}

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	case VerdictInvalidOperator:
		return "invalid operator"
	case VerdictDivideByZero:
		return "divide by zero"
	}
	return "unknown"
}

// Check evaluates a Problem against its own answer.
func Check(p Problem) Verdict {
	return CheckAnswer(p, p.Answer)
}

// CheckAnswer evaluates a Problem against an externally supplied
// candidate. An unsupported operator or a zero divisor yields its own
// verdict rather than a fault; CheckAnswer never panics.
func CheckAnswer(p Problem, candidate int) Verdict {
	result, err := Apply(p.Op, p.Left, p.Right)
	if err != nil {
		if errors.Is(err, ErrDivideByZero) {
			return VerdictDivideByZero
		}
		return VerdictInvalidOperator
	}
	if result == candidate {
		return VerdictCorrect
	}
	return VerdictIncorrect
}
