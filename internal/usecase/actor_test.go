package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/WakoSS-nsk/api-yamdb/internal/data/entity"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

func TestActorCanModify(t *testing.T) {
	ownID := uuid.New()
	otherID := uuid.New()

	cases := []struct {
		name     string
		actor    Actor
		authorID uuid.UUID
		want     bool
	}{
		{"owner", Actor{ID: ownID, Role: entity.RoleUser}, ownID, true},
		{"stranger", Actor{ID: ownID, Role: entity.RoleUser}, otherID, false},
		{"moderator on foreign object", Actor{ID: ownID, Role: entity.RoleModerator}, otherID, true},
		{"admin on foreign object", Actor{ID: ownID, Role: entity.RoleAdmin}, otherID, true},
		{"superuser with plain role", Actor{ID: ownID, Role: entity.RoleUser, Superuser: true}, otherID, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.actor.CanModify(tc.authorID); got != tc.want {
				t.Fatalf("CanModify = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestActorFromContext(t *testing.T) {
	userID := uuid.New()
	claims := &utils.TokenClaims{
		UserID:    userID.String(),
		Username:  "reader",
		Role:      "moderator",
		Superuser: true,
		Active:    true,
	}

	ctx := utils.SetUserContext(context.Background(), claims)

	actor, ok := ActorFromContext(ctx)
	if !ok {
		t.Fatal("actor not found in prepared context")
	}
	if actor.ID != userID {
		t.Errorf("ID = %s, want %s", actor.ID, userID)
	}
	if actor.Username != "reader" {
		t.Errorf("Username = %q", actor.Username)
	}
	if actor.Role != entity.RoleModerator {
		t.Errorf("Role = %s", actor.Role)
	}
	if !actor.Superuser {
		t.Error("Superuser flag lost")
	}
}

func TestActorFromEmptyContext(t *testing.T) {
	if _, ok := ActorFromContext(context.Background()); ok {
		t.Fatal("actor reported for empty context")
	}
}
