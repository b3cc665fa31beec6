// Package shared holds the sentinel errors of the dev server. Handlers map
// them to HTTP status codes.
package shared

import "errors"

var (
	ErrorNotFound = errors.New("not found")

	ErrorValidation           = errors.New("validation error")
	ErrorLoginAlreadyExists   = errors.New("login already exists")
	ErrorInvalidLoginPassword = errors.New("invalid login/password")

	ErrorInvalidAuthHeaderFormat = errors.New("invalid auth header format")
	ErrorInvalidToken            = errors.New("invalid token")
	ErrorUnknownUser             = errors.New("unknown user")
)
