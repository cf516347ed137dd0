package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"furnicraft/internal/infra/db"
	"furnicraft/internal/infra/repository"
	"furnicraft/internal/pkg/errs"
	"furnicraft/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryPolicy bounds how often a write transaction is replayed after
// serialization failures and deadlocks.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetryPolicy = retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

// retry reports whether attempt (zero based) may be followed by another one.
func (p retryPolicy) retry(err error, attempt int) bool {
	return attempt < p.maxRetries && isRetryableError(err)
}

// backoff doubles per attempt with up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	if spread := int64(wait / 5); spread > 0 {
		wait += time.Duration(rand.Int63n(spread))
	}
	return wait
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	policy retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, policy: defaultRetryPolicy}
}

// Within runs fn in a READ COMMITTED transaction and replays it on
// serialization failures and deadlocks.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !u.policy.retry(err, attempt) {
			if isRetryableError(err) {
				slog.Error("Transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := u.policy.backoff(attempt)
		slog.Warn("Retrying transaction",
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

// attempt runs one transaction. Rollback after a successful commit is a no-op.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, &pgTx{dbtx: pgxTx}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// WithinReadOnly gives fn a REPEATABLE READ snapshot, so dashboards that read
// several tables see one consistent state.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("Rollback failed", "error", err.Error())
	}
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type pgTx struct {
	dbtx db.DBTX

	couponRepo  shared.CouponRepository
	orderRepo   shared.OrderRepository
	userRepo    shared.UserRepository
	outboxRepo  shared.OutboxRepository
	productRepo shared.ProductRepository
	reviewRepo  shared.ReviewRepository
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = repository.NewCouponRepository(t.dbtx)
	}
	return t.couponRepo
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.dbtx)
	}
	return t.orderRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.dbtx)
	}
	return t.outboxRepo
}

func (t *pgTx) Products() shared.ProductRepository {
	if t.productRepo == nil {
		t.productRepo = repository.NewProductRepository(t.dbtx)
	}
	return t.productRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository(t.dbtx)
	}
	return t.reviewRepo
}
