// internal/measure/errors.go
package measure

import (
	"errors"

	"github.com/tamzrod/keyer-test/internal/timeline"
)

// codedError is a sentinel carrying the numeric code published in the
// status block.
type codedError struct {
	msg  string
	code uint16
}

func (e *codedError) Error() string { return e.msg }
func (e *codedError) Code() uint16  { return e.code }

// Error codes. 0 means no error.
const (
	CodeNone         uint16 = 0
	CodeGeneric      uint16 = 1
	CodeTooLong      uint16 = 2
	CodeNoTransition uint16 = 3
	CodeNoBaseline   uint16 = 4
	CodeTransport    uint16 = 5
	CodeProgram      uint16 = 6
)

var (
	// ErrTooLong indicates fewer intervals than required were captured:
	// the keyer element is too long for the capture window.
	ErrTooLong error = &codedError{"measure: element too long", CodeTooLong}

	// ErrNoTransition indicates a calibration trial saw no relay transition.
	ErrNoTransition error = &codedError{"measure: no transition observed", CodeNoTransition}

	// ErrNoBaseline indicates a sweep was requested before element lengths
	// were measured.
	ErrNoBaseline error = &codedError{"measure: no timing baselines, run the length check first", CodeNoBaseline}

	// ErrTransport wraps any device channel failure.
	ErrTransport error = &codedError{"measure: transport failure", CodeTransport}
)

// ErrorCode extracts the status code of err.
// Errors that carry no code map to CodeGeneric.
func ErrorCode(err error) uint16 {
	if err == nil {
		return CodeNone
	}

	var c interface{ Code() uint16 }
	if errors.As(err, &c) {
		return c.Code()
	}
	if isProgramError(err) {
		return CodeProgram
	}
	return CodeGeneric
}

// isProgramError reports whether err is a stimulus program precondition
// violation.
func isProgramError(err error) bool {
	return errors.Is(err, timeline.ErrBufferFull) ||
		errors.Is(err, timeline.ErrPositionRange) ||
		errors.Is(err, timeline.ErrPositionOrder)
}
