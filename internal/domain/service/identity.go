package service

import "context"

// IdentityResolver resolves the identity a request is acting as. The current
// deployment has no authentication, so the only implementation resolves every
// request to the shared anonymous identity; a real auth layer can be swapped
// in without touching the report service.
type IdentityResolver interface {
	// Resolve returns the user identity for the current request context.
	Resolve(ctx context.Context) (string, error)
}
