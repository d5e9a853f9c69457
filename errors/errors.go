package errors

import (
	"fmt"
)

type Error interface {
	error

	Code() int
	Kind() string
	Message() string
	Cause() error
}

// Default code defines the code that will be used by default when
// none is given. It is set to 500, Internal Server Error
var DefaultCode = 500

type myError struct {
	code  int
	kind  string
	msg   string
	cause *myError
}

func (err *myError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *myError) Code() int {
	return err.code
}

func (err *myError) Kind() string {
	return err.kind
}

func (err *myError) Message() string {
	return err.msg
}

func (err *myError) Cause() error {
	return err.cause
}

type ErrorEnricher func(error) error

func WithCode(code int) ErrorEnricher {
	return func(err error) error {
		if err == nil {
			return nil
		}

		switch err := err.(type) {
		case *myError:
			err.code = code
			return err
		}

		// default
		return &myError{
			msg:   err.Error(),
			code:  code,
			cause: nil,
		}
	}
}

// WithKind tags an error with a machine-readable kind so that callers can
// tell deny reasons apart without parsing messages.
func WithKind(kind string) ErrorEnricher {
	return func(err error) error {
		if err == nil {
			return nil
		}

		switch err := err.(type) {
		case *myError:
			err.kind = kind
			return err
		}

		return &myError{
			msg:   err.Error(),
			code:  DefaultCode,
			kind:  kind,
			cause: nil,
		}
	}
}

func WithCause(cause error) ErrorEnricher {
	var myCause *myError
	switch cause := cause.(type) {
	case *myError:
		myCause = cause
	default:
		myCause = &myError{msg: cause.Error(), code: DefaultCode, cause: nil}
	}

	return func(err error) error {
		if err == nil {
			return nil
		}

		if myErr, ok := err.(*myError); ok {
			myErr.cause = myCause
			return myErr
		}

		return &myError{
			msg:   err.Error(),
			code:  myCause.code,
			cause: myCause,
		}
	}
}

func New(msg string, fs ...ErrorEnricher) error {
	var err error
	err = &myError{
		msg:   msg,
		code:  DefaultCode,
		cause: nil,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}

// KindOf returns the kind of err, or the empty string when err carries none.
func KindOf(err error) string {
	if err, ok := err.(Error); ok {
		return err.Kind()
	}
	return ""
}
