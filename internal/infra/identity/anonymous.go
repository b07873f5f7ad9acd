// Package identity provides IdentityResolver implementations.
package identity

import (
	"context"

	"goodah/internal/domain/service"
)

// AnonymousUserID is the shared identity stamped on writes while the service
// runs without authentication.
const AnonymousUserID = "user_anon"

type anonymousResolver struct{}

// NewAnonymousResolver returns a resolver that attributes every request to
// the shared anonymous identity.
func NewAnonymousResolver() service.IdentityResolver {
	return &anonymousResolver{}
}

func (r *anonymousResolver) Resolve(_ context.Context) (string, error) {
	return AnonymousUserID, nil
}
