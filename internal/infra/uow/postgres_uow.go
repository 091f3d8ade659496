package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"bakery-orders/internal/infra/repository"
	"bakery-orders/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// Beginner is the part of *pgxpool.Pool needed to open transactions.
type Beginner interface {
	BeginTx(ctx context.Context, options pgx.TxOptions) (pgx.Tx, error)
}

// PostgresUoW runs order document writes in a transaction and retries the ones Postgres
// aborted because of a concurrent writer on the same row.
type PostgresUoW struct {
	pool       Beginner
	logger     *slog.Logger
	base       time.Duration
	maxRetries int
}

var (
	_ repository.TxRunner = (*PostgresUoW)(nil)
	_ Beginner            = (*pgxpool.Pool)(nil)
)

func NewPostgresUoW(pool Beginner, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:       pool,
		logger:     logger,
		base:       50 * time.Millisecond,
		maxRetries: 3,
	}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, db repository.DBTX) error) error {
	for attempt := 0; ; attempt++ {
		err := u.once(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		if attempt == u.maxRetries {
			u.logger.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := backoff(attempt, u.base)
		u.logger.Warn("retrying order transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// once owns exactly one transaction so its rollback is deferred per attempt.
func (u *PostgresUoW) once(ctx context.Context, fn func(ctx context.Context, db repository.DBTX) error) (err error) {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			u.logger.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// backoff doubles per attempt with up to 20% jitter.
func backoff(attempt int, base time.Duration) time.Duration {
	wait := base << attempt
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}
