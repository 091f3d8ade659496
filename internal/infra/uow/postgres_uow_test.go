//go:build unit

package uow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"bakery-orders/internal/infra/repository"
	"bakery-orders/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
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
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs []*fakeTx
	err error
}

func (b *fakeBeginner) BeginTx(ctx context.Context, options pgx.TxOptions) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func newTestUoW(b Beginner) *PostgresUoW {
	u := NewPostgresUoW(b, slog.New(slog.NewTextHandler(io.Discard, nil)))
	u.base = time.Millisecond
	return u
}

func TestWithin(t *testing.T) {
	ctx := context.Background()

	t.Run("成功時はコミット", func(t *testing.T) {
		b := &fakeBeginner{}

		err := newTestUoW(b).Within(ctx, func(ctx context.Context, db repository.DBTX) error { return nil })
		assert.NoError(t, err)
		assert.Len(t, b.txs, 1)
		assert.True(t, b.txs[0].committed)
	})

	t.Run("シリアライズ失敗は再試行", func(t *testing.T) {
		b := &fakeBeginner{}
		calls := 0

		err := newTestUoW(b).Within(ctx, func(ctx context.Context, db repository.DBTX) error {
			calls++
			if calls < 3 {
				return &pgconn.PgError{Code: pgErrCodeSerializationFailure}
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.True(t, b.txs[0].rolledBack)
		assert.True(t, b.txs[2].committed)
	})

	t.Run("上限を超えると失敗", func(t *testing.T) {
		b := &fakeBeginner{}

		err := newTestUoW(b).Within(ctx, func(ctx context.Context, db repository.DBTX) error {
			return &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
		})
		assert.True(t, errs.Is(err, errMaxRetriesExceeded))
		assert.Len(t, b.txs, 4)
	})

	t.Run("再試行対象外のエラーはそのまま返す", func(t *testing.T) {
		b := &fakeBeginner{}
		boom := errors.New("boom")

		err := newTestUoW(b).Within(ctx, func(ctx context.Context, db repository.DBTX) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.Len(t, b.txs, 1)
	})

	t.Run("待機中にキャンセルされたら中断", func(t *testing.T) {
		b := &fakeBeginner{}
		cctx, cancel := context.WithCancel(ctx)
		u := newTestUoW(b)
		u.base = time.Hour

		err := u.Within(cctx, func(ctx context.Context, db repository.DBTX) error {
			cancel()
			return &pgconn.PgError{Code: pgErrCodeLockNotAvailable}
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Len(t, b.txs, 1)
		assert.True(t, b.txs[0].rolledBack)
	})

	t.Run("開始失敗", func(t *testing.T) {
		b := &fakeBeginner{err: errors.New("pool closed")}

		err := newTestUoW(b).Within(ctx, func(ctx context.Context, db repository.DBTX) error { return nil })
		assert.True(t, errs.Is(err, errTransactionBegin))
	})
}

func TestBackoff(t *testing.T) {
	base := 10 * time.Millisecond
	for attempt := range 4 {
		wait := backoff(attempt, base)
		floor := base << attempt
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}
