package derive

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-certgen/pkg/record"
)

// ErrInvalidCode is wrapped by every RejectedError.
var ErrInvalidCode = errors.New("derive: invalid code")

// Reason classifies a rejection.
type Reason string

const (
	ReasonInvalidSex    Reason = "invalid sex code"
	ReasonInvalidPeriod Reason = "invalid period code"
	ReasonInvalidClass  Reason = "invalid class label"
)

// RejectedError reports why a record could not be derived, carrying the
// offending raw value.
type RejectedError struct {
	Key    string
	Field  record.FieldName
	Value  string
	Reason Reason
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("derive: entity %q: %s %q (field %s)", e.Key, e.Reason, e.Value, e.Field)
}

func (e *RejectedError) Unwrap() error {
	return ErrInvalidCode
}
