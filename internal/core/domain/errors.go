package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure. Every caller-facing error returned by
// the core carries exactly one Kind, which the HTTP adapter maps onto a
// status code.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindMissingField
	KindInvalidCountryCode
	KindInvalidAmount
	KindEmptyPayoutSet
	KindDuplicatePayoutCountry
	KindLastPayoutProtected
	KindNotFound
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindMissingField:
		return "missing field"
	case KindInvalidCountryCode:
		return "invalid country code"
	case KindInvalidAmount:
		return "invalid amount"
	case KindEmptyPayoutSet:
		return "empty payout set"
	case KindDuplicatePayoutCountry:
		return "duplicate payout country"
	case KindLastPayoutProtected:
		return "last payout protected"
	case KindNotFound:
		return "not found"
	case KindPersistence:
		return "persistence error"
	default:
		return "unknown error"
	}
}

// Error is the single error type produced by the domain and use cases.
// Field names the offending input field and Value the offending raw value,
// when there is one. Err holds the underlying cause for persistence errors.
type Error struct {
	Kind  Kind
	Field string
	Value string
	Err   error
}

// Sentinels for errors.Is. Matching is done on Kind only.
var (
	ErrMissingField           = &Error{Kind: KindMissingField}
	ErrInvalidCountryCode     = &Error{Kind: KindInvalidCountryCode}
	ErrInvalidAmount          = &Error{Kind: KindInvalidAmount}
	ErrEmptyPayoutSet         = &Error{Kind: KindEmptyPayoutSet}
	ErrDuplicatePayoutCountry = &Error{Kind: KindDuplicatePayoutCountry}
	ErrLastPayoutProtected    = &Error{Kind: KindLastPayoutProtected}
	ErrNotFound               = &Error{Kind: KindNotFound}
	ErrPersistence            = &Error{Kind: KindPersistence}
)

func (e *Error) Error() string {
	switch {
	case e.Kind == KindPersistence && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Field != "" && e.Value != "":
		return fmt.Sprintf("%s: %s %q", e.Kind, e.Field, e.Value)
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	case e.Value != "":
		return fmt.Sprintf("%s: %q", e.Kind, e.Value)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func missingField(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field}
}

func invalidCountry(field, raw string) *Error {
	return &Error{Kind: KindInvalidCountryCode, Field: field, Value: raw}
}

func invalidAmount(field, raw string) *Error {
	return &Error{Kind: KindInvalidAmount, Field: field, Value: raw}
}

// InvalidAmount builds a KindInvalidAmount error for raw. Storage adapters
// return it when an amount does not fit their numeric type.
func InvalidAmount(raw string) *Error {
	return invalidAmount("amount", raw)
}

// DuplicateCountry builds a KindDuplicatePayoutCountry error for code.
// Storage adapters return it when their uniqueness constraint fires.
func DuplicateCountry(code string) *Error {
	return &Error{Kind: KindDuplicatePayoutCountry, Field: "country", Value: code}
}

// NotFound builds a KindNotFound error for the named resource.
func NotFound(resource string, id any) *Error {
	return &Error{Kind: KindNotFound, Field: resource, Value: fmt.Sprint(id)}
}

// Persistence wraps a storage failure. Errors that already carry a domain
// Kind are returned unchanged so that invariant violations raised inside a
// unit of work keep their meaning.
func Persistence(err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindUnknown {
		return err
	}
	return &Error{Kind: KindPersistence, Err: err}
}
