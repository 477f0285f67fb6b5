package entities

// Roles resolved by the auth boundary. Only mecanico is restricted: it may
// mutate an order's lifecycle only when assigned to that order.
const (
	RoleAdmin     = "admin"
	RoleAtendente = "atendente"
	RoleMecanico  = "mecanico"
)

// Actor is the tenant/auth context the HTTP middleware resolves for every
// call. Authentication itself happens upstream; this core only consumes the
// resolved identity.
type Actor struct {
	TenantID string `json:"tenant_id"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
}

// Restricted reports whether the actor needs an assignment check before
// mutating an order.
func (a Actor) Restricted() bool {
	return a.Role == RoleMecanico
}
