package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/focusflow/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertKV = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, '2025-06-15T09:00:00Z')`

func openUoW(t *testing.T) (*db.SQLiteUnitOfWork, func(key string) bool) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	exists := func(key string) bool {
		var n int
		require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM kv_store WHERE key = ?`, key).Scan(&n))
		return n == 1
	}
	return db.NewSQLiteUnitOfWork(database), exists
}

func TestWithinTx_CommitsAllWrites(t *testing.T) {
	uow, exists := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertKV, "a", "1"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, insertKV, "b", "2")
		return err
	})
	require.NoError(t, err)

	assert.True(t, exists("a"))
	assert.True(t, exists("b"))
}

func TestWithinTx_ErrorRollsBackEarlierWrites(t *testing.T) {
	uow, exists := openUoW(t)
	boom := errors.New("second write failed")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertKV, "a", "1"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.False(t, exists("a"))
}

func TestWithinTx_ConstraintViolationRollsBack(t *testing.T) {
	uow, exists := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertKV, "a", "1"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, insertKV, "a", "dup")
		return err
	})
	require.Error(t, err)
	assert.False(t, exists("a"))
}

func TestWithinTx_PanicRollsBackAndPropagates(t *testing.T) {
	uow, exists := openUoW(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertKV, "a", "1")
			panic("boom")
		})
	})
	assert.False(t, exists("a"))
}

func TestWithinTx_CancelledContext(t *testing.T) {
	uow, _ := openUoW(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(context.Context, db.DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}
