// Package history records the problems evaluated during one program
// run and summarizes them when the session ends. Nothing is persisted.
package history

import (
	"time"

	"github.com/google/uuid"
	"github.com/norrisa/dataman/internal/problem"
)

// Mode tells which part of the program produced an attempt.
type Mode string

const (
	ModeChecker   Mode = "checker"
	ModeBankSolve Mode = "bank"
)

// Attempt is one evaluated problem within a session.
type Attempt struct {
	Problem    problem.Problem
	Candidate  int
	Verdict    problem.Verdict
	Mode       Mode
	AnsweredAt time.Time
}

// Session collects the attempts of one program run in order.
type Session struct {
	ID        string
	StartedAt time.Time
	attempts  []Attempt
	now       func() time.Time
}

// NewSession starts a session with a fresh ID.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		now:       time.Now,
	}
}

// Record appends an attempt to the session.
func (s *Session) Record(p problem.Problem, candidate int, verdict problem.Verdict, mode Mode) {
	s.attempts = append(s.attempts, Attempt{
		Problem:    p,
		Candidate:  candidate,
		Verdict:    verdict,
		Mode:       mode,
		AnsweredAt: s.now(),
	})
}

// Attempts returns a copy of the recorded attempts in order.
func (s *Session) Attempts() []Attempt {
	out := make([]Attempt, len(s.attempts))
	copy(out, s.attempts)
	return out
}

// Stats summarizes the attempts of a session. Errored counts attempts
// that could not be evaluated at all (invalid operator, divide by zero).
type Stats struct {
	Total     int
	Correct   int
	Incorrect int
	Errored   int
}

// Summary tallies the session's attempts.
func (s *Session) Summary() Stats {
	var stats Stats
	for _, attempt := range s.attempts {
		stats.Total++
		switch attempt.Verdict {
		case problem.VerdictCorrect:
			stats.Correct++
		case problem.VerdictIncorrect:
			stats.Incorrect++
		default:
			stats.Errored++
		}
	}
	return stats
}
