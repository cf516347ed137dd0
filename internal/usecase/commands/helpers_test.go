//go:build unit

package commands_test

import (
	"context"
	"errors"

	"furnicraft/internal/infra"
	"furnicraft/internal/usecase/shared"
	sharedmock "furnicraft/tests/mock/shared"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"
)

type txMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	coupons  *sharedmock.MockCouponRepository
	orders   *sharedmock.MockOrderRepository
	users    *sharedmock.MockUserRepository
	outbox   *sharedmock.MockOutboxRepository
	products *sharedmock.MockProductRepository
	reviews  *sharedmock.MockReviewRepository
}

// newTxMocks wires a unit of work whose Within runs the callback against mocked repositories.
func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		coupons:  sharedmock.NewMockCouponRepository(ctrl),
		orders:   sharedmock.NewMockOrderRepository(ctrl),
		users:    sharedmock.NewMockUserRepository(ctrl),
		outbox:   sharedmock.NewMockOutboxRepository(ctrl),
		products: sharedmock.NewMockProductRepository(ctrl),
		reviews:  sharedmock.NewMockReviewRepository(ctrl),
	}
	m.tx.EXPECT().Coupons().Return(m.coupons).AnyTimes()
	m.tx.EXPECT().Orders().Return(m.orders).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Outbox().Return(m.outbox).AnyTimes()
	m.tx.EXPECT().Products().Return(m.products).AnyTimes()
	m.tx.EXPECT().Reviews().Return(m.reviews).AnyTimes()
	return m
}

func (m *txMocks) expectWithin() {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}

func notFoundErr() error {
	return infra.WrapRepoErr("row not found", nil, infra.KindNotFound)
}

func duplicateErr() error {
	return infra.WrapRepoErr("insert failed", &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
}

var dbErrSentinel = errors.New("connection reset")

func dbErr() error {
	return infra.WrapRepoErr("query failed", dbErrSentinel)
}
