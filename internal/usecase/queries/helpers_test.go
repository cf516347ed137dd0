//go:build unit

package queries_test

import (
	"context"
	"time"

	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	sharedmock "furnicraft/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func runDB(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
	return fn(ctx, nil)
}

// newReadUoW returns a unit of work whose read paths invoke the callback with a nil DBTX.
func newReadUoW(ctrl *gomock.Controller) *sharedmock.MockUnitOfWork {
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(runDB).AnyTimes()
	uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(runDB).AnyTimes()
	return uow
}

func notFoundErr() error {
	return infra.WrapRepoErr("row not found", nil, infra.KindNotFound)
}
