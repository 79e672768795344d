package stackyard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exampleDiagram = []string{
	"    [D]    ",
	"[N] [C]    ",
	"[Z] [M] [P]",
	" 1   2   3 ",
}

func TestParseDiagram_WorkedExample(t *testing.T) {
	y, err := ParseDiagram(exampleDiagram)
	require.NoError(t, err)

	assert.Equal(t, 3, y.Lanes())
	assert.Equal(t, []string{"NZ", "DCM", "P"}, y.Snapshot())
}

func TestParseDiagram_TrimmedRows(t *testing.T) {
	// Editors strip trailing spaces and some inputs drop the index indent.
	y, err := ParseDiagram([]string{
		"    [D]",
		"[N] [C]",
		"[Z] [M] [P]",
		"1   2   3",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"NZ", "DCM", "P"}, y.Snapshot())
}

func TestParseDiagram_EmptyLanes(t *testing.T) {
	y, err := ParseDiagram([]string{
		"    [A]",
		" 1   2   3",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"", "A", ""}, y.Snapshot())
}

func TestParseDiagram_Errors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		code  ErrorCode
		line  int
	}{
		{
			name:  "no lines",
			lines: nil,
			code:  ErrCodeMissingIndexLine,
		},
		{
			name:  "blank index line",
			lines: []string{"[A]", "   "},
			code:  ErrCodeMalformedIndexLine,
			line:  2,
		},
		{
			name:  "non-numeric index",
			lines: []string{"[A]", " 1   x"},
			code:  ErrCodeMalformedIndexLine,
			line:  2,
		},
		{
			name:  "zero lanes",
			lines: []string{" 0"},
			code:  ErrCodeMalformedIndexLine,
			line:  1,
		},
		{
			name:  "garbage chunk",
			lines: []string{"[A] XYZ ", " 1   2"},
			code:  ErrCodeMalformedDiagramRow,
			line:  1,
		},
		{
			name:  "bracket without label",
			lines: []string{"[A]", "[", " 1"},
			code:  ErrCodeMalformedDiagramRow,
			line:  2,
		},
		{
			name:  "crate beyond lane count",
			lines: []string{"[A] [B]", " 1"},
			code:  ErrCodeMalformedDiagramRow,
			line:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDiagram(tt.lines)
			require.Error(t, err)

			var se *Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.code, se.Code)
			assert.Equal(t, tt.line, se.Line)
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		line string
		want Move
	}{
		{"move 1 from 2 to 1", Move{Quantity: 1, From: 2, To: 1}},
		{"move 13 from 8 to 9", Move{Quantity: 13, From: 8, To: 9}},
		{"  move\t2  from 1 to 3 ", Move{Quantity: 2, From: 1, To: 3}},
		{"move 0 from 1 to 2", Move{Quantity: 0, From: 1, To: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseMove(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		line string
		code ErrorCode
	}{
		{"move abc from 2 to 1", ErrCodeFieldNotInteger},
		{"move 1 from two to 1", ErrCodeFieldNotInteger},
		{"move 1 from 2 to -1", ErrCodeFieldNotInteger},
		{"move +1 from 2 to 1", ErrCodeFieldNotInteger},
		{"move 99999999999999999999 from 2 to 1", ErrCodeFieldNotInteger},
		{"shift 1 from 2 to 1", ErrCodePatternMismatch},
		{"move 1 from 2", ErrCodePatternMismatch},
		{"move 1 from 2 to 1 now", ErrCodePatternMismatch},
		{"move 1 to 2 from 1", ErrCodePatternMismatch},
		{"", ErrCodePatternMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseMove(tt.line)
			require.Error(t, err)
			assert.Equal(t, tt.code, CodeOf(err))
		})
	}
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "move 3 from 1 to 2", Move{Quantity: 3, From: 1, To: 2}.String())
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"single", "SINGLE", "9000"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, ModeSingle, m)
	}
	for _, s := range []string{"block", " Block ", "9001"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, ModeBlock, m)
	}

	_, err := ParseMode("9002")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Code: ErrCodeLaneExhausted, Message: "not enough", Line: 7}
	assert.Equal(t, "LANE_EXHAUSTED: not enough (line 7)", err.Error())

	err = &Error{Code: ErrCodeMissingStateBlock, Message: "input is empty"}
	assert.Equal(t, "MISSING_STATE_BLOCK: input is empty", err.Error())

	assert.False(t, IsCode(nil, ErrCodeLaneExhausted))
	assert.Equal(t, ErrorCode(""), CodeOf(assert.AnError))
}
