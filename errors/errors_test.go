package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWithCode(t *testing.T) {
	tts := []struct {
		err      error
		code     int
		expected *myError
	}{
		{
			err:  errors.New("simple error"),
			code: 404,
			expected: &myError{
				msg:   "simple error",
				code:  404,
				cause: nil,
			},
		},
		{
			err: &myError{
				msg:   "custom error",
				code:  200,
				cause: nil,
			},
			code: 501,
			expected: &myError{
				msg:   "custom error",
				code:  501,
				cause: nil,
			},
		},
		{
			err: &myError{
				msg:   "keep cause",
				code:  125,
				cause: &myError{msg: "I am the cause"},
			},
			code: 305,
			expected: &myError{
				msg:   "keep cause",
				code:  305,
				cause: &myError{msg: "I am the cause"},
			},
		},
		{
			// nil input should give nil output
			err:      nil,
			code:     305,
			expected: nil,
		},
	}

	for i, tt := range tts {
		err, _ := WithCode(tt.code)(tt.err).(*myError)
		assertErrors(tt.expected, err, t, fmt.Sprintf("%d WithCode", i))
	}
}

func TestWithKind(t *testing.T) {
	tts := []struct {
		err      error
		kind     string
		expected *myError
	}{
		{
			err:  errors.New("simple error"),
			kind: "write-denied",
			expected: &myError{
				msg:  "simple error",
				code: 500,
				kind: "write-denied",
			},
		},
		{
			err: &myError{
				msg:  "custom error",
				code: 403,
				kind: "read-denied",
			},
			kind: "owner-required",
			expected: &myError{
				msg:  "custom error",
				code: 403,
				kind: "owner-required",
			},
		},
		{
			err:      nil,
			kind:     "not-invited",
			expected: nil,
		},
	}

	for i, tt := range tts {
		err, _ := WithKind(tt.kind)(tt.err).(*myError)
		assertErrors(tt.expected, err, t, fmt.Sprintf("%d WithKind", i))
	}
}

func TestKindOf(t *testing.T) {
	err := New("no write access", Forbidden(), WithKind("write-denied"))
	if kind := KindOf(err); kind != "write-denied" {
		t.Errorf("incorrect kind: expected write-denied got %s", kind)
	}

	if kind := KindOf(errors.New("plain")); kind != "" {
		t.Errorf("incorrect kind for plain error: expected empty got %s", kind)
	}
}

func TestWithCause(t *testing.T) {
	tts := []struct {
		err      error
		cause    error
		expected *myError
	}{
		{
			err:   errors.New("simple error"),
			cause: errors.New("I am the cause"),
			expected: &myError{
				msg:   "simple error",
				code:  500,
				cause: &myError{msg: "I am the cause", code: DefaultCode, cause: nil},
			},
		},
		{
			err: errors.New("simple error"),
			cause: &myError{
				msg:   "forward code",
				code:  120,
				cause: nil,
			},
			expected: &myError{
				msg:   "simple error",
				code:  120,
				cause: &myError{msg: "forward code", code: 120, cause: nil},
			},
		},
		{
			err: &myError{
				msg:   "custom error",
				code:  200,
				cause: nil,
			},
			cause: &myError{
				msg:   "custom cause",
				code:  300,
				cause: nil,
			},
			expected: &myError{
				msg:   "custom error",
				code:  200,
				cause: &myError{msg: "custom cause", code: 300, cause: nil},
			},
		},
		{
			// nil input should give nil output
			err:      nil,
			cause:    errors.New("the cause is ignored if the wrapper is nil"),
			expected: nil,
		},
	}

	for i, tt := range tts {
		err, _ := WithCause(tt.cause)(tt.err).(*myError)
		assertErrors(tt.expected, err, t, fmt.Sprintf("%d WithCause", i))
	}
}

func assertErrors(exp *myError, got *myError, t *testing.T, name string) {
	if exp == nil && got == nil {
		return
	}

	if exp == nil && got != nil {
		t.Errorf("%s - expected nil, got non-nil", name)
		return
	}

	if exp != nil && got == nil {
		t.Errorf("%s - expected non-nil, got nil", name)
		return
	}

	if got.code != exp.code {
		t.Errorf("%s - code: %d != %d", name, exp.code, got.code)
	}

	if got.kind != exp.kind {
		t.Errorf("%s - kind: %s != %s", name, exp.kind, got.kind)
	}

	if got.msg != exp.msg {
		t.Errorf("%s - msg: %s != %s", name, exp.msg, got.msg)
	}

	assertErrors(exp.cause, got.cause, t, name)
}
