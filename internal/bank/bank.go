// Package bank implements the Memory Bank: an ordered, append-only,
// in-memory store of problems scoped to one program run.
package bank

import (
	"errors"
	"fmt"

	"github.com/norrisa/dataman/internal/problem"
)

// ErrBankFull reports an append beyond the configured capacity.
var ErrBankFull = errors.New("memory bank is full")

// OutOfRangeError reports a lookup outside [1, Size].
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("no problem %d: the memory bank holds %d problem(s)", e.Index, e.Size)
}

// Bank stores problems in insertion order. Problems are addressed with
// 1-based indexes, matching how they are listed to the user.
type Bank struct {
	problems []problem.Problem
	capacity int
}

// New creates an empty Bank. A capacity of 0 means unlimited.
func New(capacity int) *Bank {
	return &Bank{capacity: capacity}
}

// Append adds a problem at the end of the bank.
func (b *Bank) Append(p problem.Problem) error {
	if b.capacity > 0 && len(b.problems) >= b.capacity {
		return fmt.Errorf("capacity %d reached: %w", b.capacity, ErrBankFull)
	}
	b.problems = append(b.problems, p)
	return nil
}

// List returns a copy of the stored problems in insertion order.
func (b *Bank) List() []problem.Problem {
	out := make([]problem.Problem, len(b.problems))
	copy(out, b.problems)
	return out
}

// Get returns the nth problem, 1-based. Indexes outside [1, Size]
// fail with an *OutOfRangeError.
func (b *Bank) Get(n int) (problem.Problem, error) {
	if n < 1 || n > len(b.problems) {
		return problem.Problem{}, &OutOfRangeError{Index: n, Size: len(b.problems)}
	}
	return b.problems[n-1], nil
}

// Size returns the number of stored problems.
func (b *Bank) Size() int {
	return len(b.problems)
}
