package entity

type Role string

const (
	RoleHuman    Role = "human"
	RoleComputer Role = "computer"
)

// Player binds a side of the session to the mark it places for the whole session.
type Player struct {
	Role Role
	Mark Mark
}

func (that Role) Opponent() Role {
	if that == RoleHuman {
		return RoleComputer
	}
	return RoleHuman
}
