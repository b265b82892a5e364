package billing

import (
	"context"
	"sync"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

var _ subscriptionRepo = &subscriptionRepoMock{}

type subscriptionRepoMock struct {
	GetByShopFunc func(ctx context.Context, shop string) (*domain.Subscription, error)
	UpsertFunc    func(ctx context.Context, s domain.Subscription) error

	calls struct {
		GetByShop []struct {
			Ctx  context.Context
			Shop string
		}
		Upsert []struct {
			Ctx context.Context
			S   domain.Subscription
		}
	}
	lockGetByShop sync.RWMutex
	lockUpsert    sync.RWMutex
}

func (mock *subscriptionRepoMock) GetByShop(ctx context.Context, shop string) (*domain.Subscription, error) {
	if mock.GetByShopFunc == nil {
		panic("subscriptionRepoMock.GetByShopFunc: method is nil but subscriptionRepo.GetByShop was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Shop string
	}{Ctx: ctx, Shop: shop}
	mock.lockGetByShop.Lock()
	mock.calls.GetByShop = append(mock.calls.GetByShop, callInfo)
	mock.lockGetByShop.Unlock()
	return mock.GetByShopFunc(ctx, shop)
}

func (mock *subscriptionRepoMock) GetByShopCalls() []struct {
	Ctx  context.Context
	Shop string
} {
	mock.lockGetByShop.RLock()
	calls := mock.calls.GetByShop
	mock.lockGetByShop.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) Upsert(ctx context.Context, s domain.Subscription) error {
	if mock.UpsertFunc == nil {
		panic("subscriptionRepoMock.UpsertFunc: method is nil but subscriptionRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Subscription
	}{Ctx: ctx, S: s}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, s)
}

func (mock *subscriptionRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	S   domain.Subscription
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
