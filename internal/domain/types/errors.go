package types

import (
	"errors"
)

// Error kinds shared by every layer. Callers use errors.Is to classify.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrUnavailable = errors.New("upstream unavailable")
	ErrInternal    = errors.New("internal error")
)

// Error carries the failing operation, its kind and the underlying cause.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return e.Op + ": " + e.Kind.Error()
	case e.Kind == nil:
		return e.Op + ": " + e.Err.Error()
	default:
		return e.Op + ": " + e.Kind.Error() + ": " + e.Err.Error()
	}
}

// Unwrap exposes both the kind and the cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// WrapKind annotates err with op and kind. A nil err yields nil.
func WrapKind(op string, kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// Wrap annotates err with op, keeping whatever kind err already carries.
// Errors with no recognised kind are classified as ErrInternal.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) == ErrInternal && !errors.Is(err, ErrInternal) {
		return &Error{Op: op, Kind: ErrInternal, Err: err}
	}
	return &Error{Op: op, Err: err}
}

// KindOf reports the taxonomy kind of err, defaulting to ErrInternal.
func KindOf(err error) error {
	for _, k := range []error{ErrNotFound, ErrValidation, ErrUnavailable} {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrInternal
}
