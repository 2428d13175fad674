package shared

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleMember  Role = "member"
	RoleTrainer Role = "trainer"
	RoleSystem  Role = "system"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleMember, RoleTrainer, RoleSystem:
		return Role(s), true
	}
	return "", false
}

// Actor is whoever issued a command. Identity is asserted by the caller, not verified here.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func SystemActor() Actor {
	return Actor{Role: RoleSystem}
}

func (a Actor) IsSystem() bool { return a.Role == RoleSystem }

// Is reports whether the actor may act as id. The system actor may act as anyone.
func (a Actor) Is(id uuid.UUID) bool {
	return a.IsSystem() || a.ID == id
}

// IsEither reports whether the actor is one of the two parties.
func (a Actor) IsEither(bookerID, trainerID uuid.UUID) bool {
	return a.Is(bookerID) || a.Is(trainerID)
}
