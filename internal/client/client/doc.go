// Package client contains the transport side of the notes client.
//
// # Overview
//
// The package provides:
//  1. The API contract (see the Client interface): Login/Signup, note CRUD
//     and the folder and tag listings.
//  2. A REST implementation (see HTTPClient) that adds the bearer token from
//     a TokenSource to every authenticated call, stamps each request with an
//     X-Request-ID and maps HTTP statuses to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations): an SQLite
//     database with embedded goose migrations.
//
// # Error Handling
//
// Callers match with errors.Is: ErrUnauthorized (401/403), ErrNotFound (404),
// ErrUnavailable (transport failures and 5xx) and ErrBadResponse (a body
// that does not decode). Other statuses surface as *netx.StatusError.
//
// HTTPClient is safe for concurrent use.
package client
