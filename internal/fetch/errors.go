package fetch

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindTransport means every attempt failed with a retryable outcome
	// (connection failure, timeout, 5xx, other request error).
	KindTransport Kind = iota + 1
	// KindClient means the server answered with a 4xx status, it is never retried.
	KindClient
	// KindCanceled means the caller's context ended before a result was obtained.
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindClient:
		return "client"
	case KindCanceled:
		return "canceled"
	}
	return "unknown"
}

var (
	ErrClientStatus     = errors.New("client error status")
	ErrRetriesExhausted = errors.New("retries exhausted")
)

// Error is the failure value of a fetch.
type Error struct {
	Kind     Kind
	URL      string
	Attempts int
	// StatusCode is the status of the last response, 0 if none was received.
	StatusCode int
	Reason     string
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("fetch %s: %s failure after %d attempt(s)", e.URL, e.Kind, e.Attempts)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	var errs []error
	switch e.Kind {
	case KindClient:
		errs = append(errs, ErrClientStatus)
	case KindTransport:
		errs = append(errs, ErrRetriesExhausted)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// IsKind reports whether err is a fetch Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var fetchErr *Error
	if !errors.As(err, &fetchErr) {
		return false
	}
	return fetchErr.Kind == kind
}
