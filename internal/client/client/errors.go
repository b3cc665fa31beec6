package client

import (
	"errors"

	"github.com/dmitrijs2005/gophnotes/internal/netx"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrBadResponse  = errors.New("malformed server response")
)

// Responded reports whether err carries an HTTP status from the server,
// as opposed to a transport or decoding failure.
func Responded(err error) bool {
	var se *netx.StatusError
	return errors.As(err, &se)
}
