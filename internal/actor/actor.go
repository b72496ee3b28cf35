package actor

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// Actor is the authenticated identity a lifecycle operation runs as. It is
// passed explicitly so authorization decisions are visible at the call site
// instead of read from ambient request state.
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
