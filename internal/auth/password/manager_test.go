package password

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestManager(t *testing.T) {
	m := New(zap.NewNop())

	hash, err := m.GenerateHashFromPassword([]byte("s3cret-pass"))
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", string(hash))

	require.NoError(t, m.CompareHashAndPassword(hash, []byte("s3cret-pass")))
	require.ErrorIs(t, m.CompareHashAndPassword(hash, []byte("wrong")), bcrypt.ErrMismatchedHashAndPassword)
}
