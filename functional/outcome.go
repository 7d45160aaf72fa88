package functional

import (
	"strings"

	"github.com/authcorp/sharedkernel/errors"
)

// Outcome is the outcome of an operation that produces no value.
type Outcome struct {
	err    string
	failed bool
}

// Success creates a successful Outcome.
func Success() Outcome {
	return Outcome{}
}

// Failure creates a failed Outcome. It panics when err is blank.
func Failure(err string) Outcome {
	requireMessage(err)
	return Outcome{err: err, failed: true}
}

// Combine returns the first failed Outcome, or Success when none failed.
func Combine(outcomes ...Outcome) Outcome {
	for _, o := range outcomes {
		if o.failed {
			return o
		}
	}
	return Success()
}

// IsSuccess returns true if the Outcome is successful.
func (o Outcome) IsSuccess() bool {
	return !o.failed
}

// IsFailure returns true if the Outcome failed.
func (o Outcome) IsFailure() bool {
	return o.failed
}

// Err returns the error message or panics on success.
func (o Outcome) Err() string {
	if !o.failed {
		panic(errors.InvalidOperation("no error message for a successful outcome"))
	}
	return o.err
}

// OnFailure runs fn when the Outcome failed.
func (o Outcome) OnFailure(fn func()) Outcome {
	if o.failed {
		fn()
	}
	return o
}

// OnFailureWith runs fn with the error message when the Outcome failed.
func (o Outcome) OnFailureWith(fn func(string)) Outcome {
	if o.failed {
		fn(o.err)
	}
	return o
}

// String returns "Success" or "Failure(<err>)".
func (o Outcome) String() string {
	if o.failed {
		return "Failure(" + o.err + ")"
	}
	return "Success"
}

func requireMessage(err string) {
	if strings.TrimSpace(err) == "" {
		panic(errors.New(errors.KindArgumentNull, errors.KeyArgumentIsNullEmptyOrWhiteSpace, "err"))
	}
}
