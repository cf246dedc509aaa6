package errs

import (
	"errors"
	"fmt"
)

// Code classifies a failure.
type Code uint8

// Failure codes
const (
	BadArgument Code = iota + 1
	IO
)

func (c Code) String() string {
	switch c {
	case BadArgument:
		return "bad argument"
	case IO:
		return "i/o"
	default:
		return fmt.Sprintf("code %d", uint8(c))
	}
}

// Err is an error carrying a Code and an optional underlying cause.
type Err struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Err) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Err) Unwrap() error {
	return e.Err
}

// Errorf returns an error with the given code and a formatted message.
func Errorf(code Code, format string, a ...interface{}) *Err {
	return &Err{Code: code, Msg: fmt.Sprintf(format, a...)}
}

// Wrap attaches a code and message to err. Returns nil if err is nil.
func Wrap(code Code, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Err{Code: code, Msg: msg, Err: err}
}

// CodeOf returns the code of the first *Err in err's chain, or 0 if there is none.
func CodeOf(err error) Code {
	var e *Err
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

// ExitStatus maps err to a process exit status: 0 for nil, 2 for bad arguments and
// 1 for everything else.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	if CodeOf(err) == BadArgument {
		return 2
	}
	return 1
}
