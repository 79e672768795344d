package stackyard

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes simulator failures.
type ErrorCode string

const (
	// ErrCodeMissingIndexLine indicates the diagram block has no lane index line.
	ErrCodeMissingIndexLine ErrorCode = "MISSING_INDEX_LINE"

	// ErrCodeMalformedIndexLine indicates the index line has no parseable trailing number.
	ErrCodeMalformedIndexLine ErrorCode = "MALFORMED_INDEX_LINE"

	// ErrCodeMalformedDiagramRow indicates a chunk that is neither blank nor a label.
	ErrCodeMalformedDiagramRow ErrorCode = "MALFORMED_DIAGRAM_ROW"

	// ErrCodeMissingStateBlock indicates the input has no diagram block at all.
	ErrCodeMissingStateBlock ErrorCode = "MISSING_STATE_BLOCK"

	// ErrCodePatternMismatch indicates an instruction not shaped like "move N from S to D".
	ErrCodePatternMismatch ErrorCode = "INSTRUCTION_PATTERN_MISMATCH"

	// ErrCodeFieldNotInteger indicates a quantity or lane field that is not a decimal integer.
	ErrCodeFieldNotInteger ErrorCode = "INSTRUCTION_FIELD_NOT_INTEGER"

	// ErrCodeLaneOutOfRange indicates a lane reference outside [1, lane count].
	ErrCodeLaneOutOfRange ErrorCode = "LANE_INDEX_OUT_OF_RANGE"

	// ErrCodeLaneExhausted indicates a move asking for more labels than the source holds.
	ErrCodeLaneExhausted ErrorCode = "LANE_EXHAUSTED"

	// ErrCodeEmptyLaneAtReadout indicates a lane with no top label at readout.
	ErrCodeEmptyLaneAtReadout ErrorCode = "EMPTY_LANE_AT_READOUT"
)

// Error is returned by every parsing and replay operation in this package.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Line is the 1-based input line the error refers to, or 0 when unknown.
	Line int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d)", e.Code, e.Message, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// atLine returns a copy of err tagged with a line number. Errors that are
// not *Error, or that already carry a line, are returned unchanged.
func atLine(err error, line int) error {
	var se *Error
	if !errors.As(err, &se) || se.Line != 0 {
		return err
	}
	tagged := *se
	tagged.Line = line
	return &tagged
}

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsCode reports whether err wraps an *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
