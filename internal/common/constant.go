// Package common holds constants and helpers shared by the notes client and
// the dev server.
package common

const (
	// AuthorizationHeader carries "Bearer <token>" on authenticated requests.
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "

	// RequestIDHeader correlates client and server log lines for one request.
	RequestIDHeader = "X-Request-ID"
)
