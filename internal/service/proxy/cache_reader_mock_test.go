package proxy

import (
	"context"
	"sync"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

var _ cacheReader = &cacheReaderMock{}

type cacheReaderMock struct {
	GetManyFunc func(ctx context.Context, shops []string) (map[string]*domain.CacheEntry, error)

	calls struct {
		GetMany []struct {
			Ctx   context.Context
			Shops []string
		}
	}
	lockGetMany sync.RWMutex
}

func (mock *cacheReaderMock) GetMany(ctx context.Context, shops []string) (map[string]*domain.CacheEntry, error) {
	if mock.GetManyFunc == nil {
		panic("cacheReaderMock.GetManyFunc: method is nil but cacheReader.GetMany was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Shops []string
	}{Ctx: ctx, Shops: shops}
	mock.lockGetMany.Lock()
	mock.calls.GetMany = append(mock.calls.GetMany, callInfo)
	mock.lockGetMany.Unlock()
	return mock.GetManyFunc(ctx, shops)
}

func (mock *cacheReaderMock) GetManyCalls() []struct {
	Ctx   context.Context
	Shops []string
} {
	mock.lockGetMany.RLock()
	calls := mock.calls.GetMany
	mock.lockGetMany.RUnlock()
	return calls
}
