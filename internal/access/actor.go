package access

import "context"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSeller   Role = "seller"
	RoleCustomer Role = "customer"
)

// RoleFor returns the coarse display role. Admin wins over seller.
func RoleFor(isAdmin, isSeller bool) Role {
	switch {
	case isAdmin:
		return RoleAdmin
	case isSeller:
		return RoleSeller
	default:
		return RoleCustomer
	}
}

// Actor is the caller of a request, resolved once by the middleware.
// Authorization checks use its flags, never Role.
type Actor struct {
	UserID  int
	Admin   bool
	Editor  bool
	Seller  bool
	StoreID int
}

func (a Actor) Role() Role {
	return RoleFor(a.Admin, a.Seller)
}

func (a Actor) IsAdmin() bool {
	return a.Admin
}

func (a Actor) HasStore() bool {
	return a.StoreID != 0
}

func (a Actor) OwnsStore(storeID int) bool {
	return a.StoreID != 0 && a.StoreID == storeID
}

// CanModerate reports whether the actor may approve catalog content.
func (a Actor) CanModerate() bool {
	return a.Admin || a.Editor
}

type actorContextKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(Actor)
	return actor, ok
}

// FromContext returns the request actor or the zero Actor outside authenticated routes.
func FromContext(ctx context.Context) Actor {
	actor, _ := ActorFromContext(ctx)
	return actor
}
