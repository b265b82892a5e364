package llmstxt

import (
	"context"
	"sync"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	OfflineTenantFunc     func(ctx context.Context, shop string) (domain.Tenant, error)
	ListAutoSyncShopsFunc func(ctx context.Context) ([]string, error)

	calls struct {
		OfflineTenant []struct {
			Ctx  context.Context
			Shop string
		}
		ListAutoSyncShops []struct {
			Ctx context.Context
		}
	}
	lockOfflineTenant     sync.RWMutex
	lockListAutoSyncShops sync.RWMutex
}

func (mock *sessionRepoMock) OfflineTenant(ctx context.Context, shop string) (domain.Tenant, error) {
	if mock.OfflineTenantFunc == nil {
		panic("sessionRepoMock.OfflineTenantFunc: method is nil but sessionRepo.OfflineTenant was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Shop string
	}{Ctx: ctx, Shop: shop}
	mock.lockOfflineTenant.Lock()
	mock.calls.OfflineTenant = append(mock.calls.OfflineTenant, callInfo)
	mock.lockOfflineTenant.Unlock()
	return mock.OfflineTenantFunc(ctx, shop)
}

func (mock *sessionRepoMock) OfflineTenantCalls() []struct {
	Ctx  context.Context
	Shop string
} {
	mock.lockOfflineTenant.RLock()
	calls := mock.calls.OfflineTenant
	mock.lockOfflineTenant.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ListAutoSyncShops(ctx context.Context) ([]string, error) {
	if mock.ListAutoSyncShopsFunc == nil {
		panic("sessionRepoMock.ListAutoSyncShopsFunc: method is nil but sessionRepo.ListAutoSyncShops was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAutoSyncShops.Lock()
	mock.calls.ListAutoSyncShops = append(mock.calls.ListAutoSyncShops, callInfo)
	mock.lockListAutoSyncShops.Unlock()
	return mock.ListAutoSyncShopsFunc(ctx)
}

func (mock *sessionRepoMock) ListAutoSyncShopsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAutoSyncShops.RLock()
	calls := mock.calls.ListAutoSyncShops
	mock.lockListAutoSyncShops.RUnlock()
	return calls
}

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetFunc func(ctx context.Context, shop string) (domain.Settings, error)

	calls struct {
		Get []struct {
			Ctx  context.Context
			Shop string
		}
	}
	lockGet sync.RWMutex
}

func (mock *settingsRepoMock) Get(ctx context.Context, shop string) (domain.Settings, error) {
	if mock.GetFunc == nil {
		panic("settingsRepoMock.GetFunc: method is nil but settingsRepo.Get was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Shop string
	}{Ctx: ctx, Shop: shop}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, shop)
}

func (mock *settingsRepoMock) GetCalls() []struct {
	Ctx  context.Context
	Shop string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

var _ subscriptionRepo = &subscriptionRepoMock{}

type subscriptionRepoMock struct {
	GetByShopFunc func(ctx context.Context, shop string) (*domain.Subscription, error)

	calls struct {
		GetByShop []struct {
			Ctx  context.Context
			Shop string
		}
	}
	lockGetByShop sync.RWMutex
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

var _ cacheStore = &cacheStoreMock{}

type cacheStoreMock struct {
	UpsertFunc func(ctx context.Context, shop string, content string) error

	calls struct {
		Upsert []struct {
			Ctx     context.Context
			Shop    string
			Content string
		}
	}
	lockUpsert sync.RWMutex
}

func (mock *cacheStoreMock) Upsert(ctx context.Context, shop string, content string) error {
	if mock.UpsertFunc == nil {
		panic("cacheStoreMock.UpsertFunc: method is nil but cacheStore.Upsert was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Shop    string
		Content string
	}{Ctx: ctx, Shop: shop, Content: content}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, shop, content)
}

func (mock *cacheStoreMock) UpsertCalls() []struct {
	Ctx     context.Context
	Shop    string
	Content string
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
