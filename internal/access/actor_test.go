package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActorRole(t *testing.T) {
	tests := []struct {
		name  string
		actor Actor
		want  Role
	}{
		{name: "customer", actor: Actor{UserID: 1}, want: RoleCustomer},
		{name: "seller", actor: Actor{UserID: 1, Seller: true, StoreID: 3}, want: RoleSeller},
		{name: "admin", actor: Actor{UserID: 1, Admin: true}, want: RoleAdmin},
		{name: "admin seller", actor: Actor{UserID: 1, Admin: true, Seller: true}, want: RoleAdmin},
		{name: "editor is customer", actor: Actor{UserID: 1, Editor: true}, want: RoleCustomer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.Role())
		})
	}
}

func TestActorChecks(t *testing.T) {
	seller := Actor{UserID: 2, Seller: true, StoreID: 7}

	assert.True(t, seller.OwnsStore(7))
	assert.False(t, seller.OwnsStore(8))
	assert.False(t, seller.IsAdmin())
	assert.False(t, seller.CanModerate())
	assert.True(t, seller.HasStore())

	// a seller flag without a store owns nothing
	storeless := Actor{UserID: 3, Seller: true}
	assert.False(t, storeless.OwnsStore(0))
	assert.False(t, storeless.HasStore())

	assert.True(t, Actor{Editor: true}.CanModerate())
	assert.True(t, Actor{Admin: true}.CanModerate())
}

func TestActorContext(t *testing.T) {
	_, ok := ActorFromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, Actor{}, FromContext(context.Background()))

	actor := Actor{UserID: 5, Admin: true}
	ctx := WithActor(context.Background(), actor)

	got, ok := ActorFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, actor, got)
}
