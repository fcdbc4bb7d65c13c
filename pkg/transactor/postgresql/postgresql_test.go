package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx    *fakeTx
	calls int
	err   error
}

func (b *fakeBeginner) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	b.calls++
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestWithinTransaction(t *testing.T) {
	errFn := errors.New("fn failed")

	tests := []struct {
		name             string
		fn               func(ctx context.Context) error
		expectedErr      error
		expectCommit     bool
		expectRolledBack bool
	}{
		{
			name:         "commit on success",
			fn:           func(ctx context.Context) error { return nil },
			expectCommit: true,
		},
		{
			name:             "rollback on error",
			fn:               func(ctx context.Context) error { return errFn },
			expectedErr:      errFn,
			expectRolledBack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &fakeTx{}
			manager := NewPgManager(&fakeBeginner{tx: tx})

			err := manager.WithinTransaction(context.Background(), tt.fn)

			require.ErrorIs(t, err, tt.expectedErr)
			require.Equal(t, tt.expectCommit, tx.committed)
			require.Equal(t, tt.expectRolledBack, tx.rolledBack)
		})
	}
}

func TestWithinTransactionExposesTx(t *testing.T) {
	tx := &fakeTx{}
	manager := NewPgManager(&fakeBeginner{tx: tx})

	err := manager.WithinTransaction(context.Background(), func(ctx context.Context) error {
		require.Same(t, tx, GetExecutor(ctx, nil))
		return nil
	})
	require.NoError(t, err)
}

func TestWithinTransactionNested(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeBeginner{tx: tx}
	manager := NewPgManager(beginner)

	err := manager.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return manager.WithinTransaction(ctx, func(ctx context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
	require.Equal(t, 1, beginner.calls)
	require.True(t, tx.committed)
}

func TestWithinTransactionRollbackOnPanic(t *testing.T) {
	tx := &fakeTx{}
	manager := NewPgManager(&fakeBeginner{tx: tx})

	require.Panics(t, func() {
		_ = manager.WithinTransaction(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})
	})
	require.True(t, tx.rolledBack)
	require.False(t, tx.committed)
}

func TestWithinTransactionBeginError(t *testing.T) {
	errBegin := errors.New("pool closed")
	manager := NewPgManager(&fakeBeginner{err: errBegin})

	called := false
	err := manager.WithinTransaction(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	require.ErrorIs(t, err, errBegin)
	require.False(t, called)
}
