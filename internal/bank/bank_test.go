package bank

import (
	"testing"

	"github.com/norrisa/dataman/internal/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBank_AppendAndGet(t *testing.T) {
	p1 := problem.Problem{Left: 2, Op: problem.OpAdd, Right: 2, Answer: 4}
	p2 := problem.Problem{Left: 3, Op: problem.OpMul, Right: 4, Answer: 12}

	b := New(0)
	require.NoError(t, b.Append(p1))
	require.NoError(t, b.Append(p2))
	assert.Equal(t, 2, b.Size())

	got1, err := b.Get(1)
	require.NoError(t, err)
	assert.Equal(t, p1, got1)

	got2, err := b.Get(2)
	require.NoError(t, err)
	assert.Equal(t, p2, got2)

	assert.Equal(t, []problem.Problem{p1, p2}, b.List())
}

func TestBank_GetOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{name: "zero index", index: 0},
		{name: "negative index", index: -1},
		{name: "past the end", index: 3},
	}

	b := New(0)
	require.NoError(t, b.Append(problem.Problem{Left: 2, Op: problem.OpAdd, Right: 2, Answer: 4}))
	require.NoError(t, b.Append(problem.Problem{Left: 5, Op: problem.OpSub, Right: 3, Answer: 2}))

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.Get(tc.index)

			var outOfRange *OutOfRangeError
			require.ErrorAs(t, err, &outOfRange)
			assert.Equal(t, tc.index, outOfRange.Index)
			assert.Equal(t, 2, outOfRange.Size)
		})
	}
}

func TestBank_GetOnEmptyBank(t *testing.T) {
	b := New(0)

	_, err := b.Get(1)

	var outOfRange *OutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, 0, outOfRange.Size)
}

func TestBank_Capacity(t *testing.T) {
	b := New(1)
	require.NoError(t, b.Append(problem.Problem{Left: 2, Op: problem.OpAdd, Right: 2, Answer: 4}))

	err := b.Append(problem.Problem{Left: 3, Op: problem.OpMul, Right: 4, Answer: 12})

	require.ErrorIs(t, err, ErrBankFull)
	assert.Equal(t, 1, b.Size())
}

func TestBank_ListReturnsCopy(t *testing.T) {
	p := problem.Problem{Left: 2, Op: problem.OpAdd, Right: 2, Answer: 4}
	b := New(0)
	require.NoError(t, b.Append(p))

	listed := b.List()
	listed[0] = problem.Problem{Left: 9, Op: problem.OpSub, Right: 9, Answer: 0}

	got, err := b.Get(1)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
