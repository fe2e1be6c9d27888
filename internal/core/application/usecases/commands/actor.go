package commands

import (
	"context"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/ports"
	"printworks/internal/pkg/errs"
)

// requireRole resolves the acting user and checks that their role is one of
// the allowed roles. A wrong role is a Forbidden error, not NotFound: the
// caller exists, they just may not do this.
func requireRole(ctx context.Context, users ports.UserDirectory, actorID kernel.UUID, roles ...ports.Role) (ports.User, error) {
	actor, err := users.GetUser(ctx, actorID)
	if err != nil {
		return ports.User{}, err
	}

	for _, role := range roles {
		if actor.Role == role {
			return actor, nil
		}
	}
	return ports.User{}, errs.NewForbiddenError(actorID.String(), "role "+actor.Role.String()+" may not perform this operation")
}
