package problem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		want        Problem
		wantErr     error
		wantParse   bool
		parseToken  string
		parseReason string
	}{
		{
			name: "valid addition",
			text: "2 + 2 = 4",
			want: Problem{Left: 2, Op: OpAdd, Right: 2, Answer: 4},
		},
		{
			name: "valid division with negative operands",
			text: "-7 / 2 = -3",
			want: Problem{Left: -7, Op: OpDiv, Right: 2, Answer: -3},
		},
		{
			name: "extra whitespace between tokens",
			text: "  3   *  4  =  12 ",
			want: Problem{Left: 3, Op: OpMul, Right: 4, Answer: 12},
		},
		{
			name: "unsupported operator parses fine",
			text: "7 % 2 = 1",
			want: Problem{Left: 7, Op: Operator("%"), Right: 2, Answer: 1},
		},
		{
			name:    "wrong equality marker returns problem and ErrFormat",
			text:    "2 + 2 == 4",
			want:    Problem{Left: 2, Op: OpAdd, Right: 2, Answer: 4},
			wantErr: ErrFormat,
		},
		{
			name:       "too few tokens",
			text:       "2 + 2",
			wantParse:  true,
			parseToken: "2 + 2",
		},
		{
			name:       "too many tokens",
			text:       "2 + 2 = 4 extra",
			wantParse:  true,
			parseToken: "2 + 2 = 4 extra",
		},
		{
			name:        "non-integer left operand",
			text:        "two + 2 = 4",
			wantParse:   true,
			parseToken:  "two",
			parseReason: "left operand is not an integer",
		},
		{
			name:        "non-integer right operand",
			text:        "2 + two = 4",
			wantParse:   true,
			parseToken:  "two",
			parseReason: "right operand is not an integer",
		},
		{
			name:        "non-integer answer",
			text:        "2 + 2 = four",
			wantParse:   true,
			parseToken:  "four",
			parseReason: "answer is not an integer",
		},
		{
			name:       "empty input",
			text:       "",
			wantParse:  true,
			parseToken: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.text)

			if tc.wantParse {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, tc.parseToken, parseErr.Token)
				if tc.parseReason != "" {
					assert.Equal(t, tc.parseReason, parseErr.Reason)
				}
				assert.Equal(t, Problem{}, got)
				return
			}
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProblem_RenderRoundTrip(t *testing.T) {
	problems := []Problem{
		{Left: 2, Op: OpAdd, Right: 2, Answer: 4},
		{Left: 5, Op: OpSub, Right: 3, Answer: 1},
		{Left: -3, Op: OpMul, Right: 4, Answer: -12},
		{Left: -7, Op: OpDiv, Right: 2, Answer: -3},
		{Left: 0, Op: OpAdd, Right: 0, Answer: 0},
	}

	for _, p := range problems {
		t.Run(p.String(), func(t *testing.T) {
			got, err := Parse(p.String())
			require.NoError(t, err)
			assert.Equal(t, p, got)
		})
	}
}

func TestProblem_Question(t *testing.T) {
	p := Problem{Left: 6, Op: OpDiv, Right: 2, Answer: 3}
	assert.Equal(t, "6 / 2 = ", p.Question())
	assert.NotContains(t, p.Question(), "3")
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		op      Operator
		left    int
		right   int
		want    int
		wantErr error
	}{
		{name: "addition", op: OpAdd, left: 2, right: 2, want: 4},
		{name: "addition with negatives", op: OpAdd, left: -2, right: -3, want: -5},
		{name: "subtraction", op: OpSub, left: 5, right: 3, want: 2},
		{name: "subtraction below zero", op: OpSub, left: 3, right: 5, want: -2},
		{name: "multiplication", op: OpMul, left: 3, right: 4, want: 12},
		{name: "multiplication by zero", op: OpMul, left: 3, right: 0, want: 0},
		{name: "division", op: OpDiv, left: 12, right: 4, want: 3},
		{name: "division truncates toward zero", op: OpDiv, left: 7, right: 2, want: 3},
		{name: "negative division truncates toward zero", op: OpDiv, left: -7, right: 2, want: -3},
		{name: "division by zero", op: OpDiv, left: 6, right: 0, wantErr: ErrDivideByZero},
		{name: "unsupported operator", op: Operator("%"), left: 7, right: 2, wantErr: ErrInvalidOperator},
		{name: "empty operator", op: Operator(""), left: 1, right: 1, wantErr: ErrInvalidOperator},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Apply(tc.op, tc.left, tc.right)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOperator_Supported(t *testing.T) {
	for _, op := range Operators() {
		assert.True(t, op.Supported(), "operator %q", op)
	}
	assert.False(t, Operator("%").Supported())
	assert.False(t, Operator("").Supported())
	assert.False(t, Operator("+-").Supported())
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Verdict
	}{
		{name: "correct addition", text: "2 + 2 = 4", want: VerdictCorrect},
		{name: "incorrect subtraction", text: "5 - 3 = 1", want: VerdictIncorrect},
		{name: "division by zero is not incorrect", text: "6 / 0 = 0", want: VerdictDivideByZero},
		{name: "modulo is an invalid operator", text: "7 % 2 = 1", want: VerdictInvalidOperator},
		{name: "correct truncating division", text: "7 / 2 = 3", want: VerdictCorrect},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Check(p))
		})
	}
}

func TestCheckAnswer(t *testing.T) {
	p := Problem{Left: 3, Op: OpMul, Right: 4, Answer: 12}

	assert.Equal(t, VerdictCorrect, CheckAnswer(p, 12))
	assert.Equal(t, VerdictIncorrect, CheckAnswer(p, 11))

	// Check must agree with CheckAnswer against the problem's own answer.
	assert.Equal(t, Check(p), CheckAnswer(p, p.Answer))
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "correct", VerdictCorrect.String())
	assert.Equal(t, "incorrect", VerdictIncorrect.String())
	assert.Equal(t, "invalid operator", VerdictInvalidOperator.String())
	assert.Equal(t, "divide by zero", VerdictDivideByZero.String())
	assert.True(t, VerdictCorrect.Correct())
	assert.False(t, VerdictDivideByZero.Correct())
}
