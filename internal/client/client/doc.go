// Package client contains the HTTP transport of the catcli client.
//
// # Overview
//
// The package provides:
//  1. Transport contracts for the two collaborators: UserClient (the custom
//     user-authentication backend) and CatClient (the third-party cat-data API).
//  2. net/http implementations of both (HTTPUserClient, HTTPCatClient) sharing
//     one request helper that stamps an X-Request-Id on every call.
//  3. The error taxonomy used at the authentication boundary (Classify,
//     APIError and the ErrXxx kinds).
//  4. Local persistence bootstrap (InitDatabase, RunMigrations) wiring the
//     SQLite file and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures surface as *HTTPError (Status 0 when no response was
// received) or *RequestError (the request could not be built). Classify turns
// either into an *APIError with a fixed user-facing message; callers match the
// kind with errors.Is, e.g. errors.Is(err, client.ErrUnauthorized).
//
// Concurrency & Contexts
//
// Both clients are safe for concurrent use. All operations accept a
// context.Context; no client-side timeout is imposed.
package client
