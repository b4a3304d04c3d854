package feed

import (
	"errors"
	"fmt"
)

// ErrInvalidURL is returned before any network call when the URL is not a
// usable http(s) address.
var ErrInvalidURL = errors.New("invalid feed url")

// ErrInvalidFeed is returned when a document has no identifiable feed
// structure. This is distinct from a recoverable parse warning.
var ErrInvalidFeed = errors.New("invalid feed structure")

// Kind classifies a fetch failure.
type Kind string

const (
	KindTimeout Kind = "timeout"
	KindHTTP    Kind = "http"
	KindNetwork Kind = "network"
)

// Error describes a failed feed fetch.
type Error struct {
	Kind   Kind
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("fetch %s: http status %d", e.URL, e.Status)
	case KindTimeout:
		return fmt.Sprintf("fetch %s: timeout: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// IsTimeout reports whether err is a fetch timeout.
func IsTimeout(err error) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == KindTimeout
}
