package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/WakoSS-nsk/api-yamdb/internal/data/entity"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

// Actor is the authenticated identity acting on a request, taken from
// the bearer token claims.
type Actor struct {
	ID        uuid.UUID
	Username  string
	Role      entity.UserRole
	Superuser bool
}

// ActorFromContext rebuilds the actor placed in the context by the
// authentication middleware.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return Actor{}, false
	}

	username, _ := utils.GetUsernameFromContext(ctx)
	role, _ := utils.GetRoleFromContext(ctx)

	return Actor{
		ID:        userID,
		Username:  username,
		Role:      entity.UserRole(role),
		Superuser: utils.GetSuperuserFromContext(ctx),
	}, true
}

// IsAdmin reports whether the actor may mutate the catalog.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin || a.Superuser
}

// CanModify is the object-level check for reviews and comments:
// admins, moderators and the object's own author may mutate it.
func (a Actor) CanModify(authorID uuid.UUID) bool {
	if a.Role == entity.RoleAdmin || a.Role == entity.RoleModerator || a.Superuser {
		return true
	}
	return a.ID == authorID
}
