package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/llmstxt-backend/internal/service/billing"
	"github.com/heartmarshall/llmstxt-backend/internal/service/llmstxt"
	"github.com/heartmarshall/llmstxt-backend/internal/service/proxy"
)

var _ proxyReader = &proxyReaderMock{}

type proxyReaderMock struct {
	ReadFunc func(ctx context.Context, rawShop string) proxy.Document

	calls struct {
		Read []struct {
			Ctx     context.Context
			RawShop string
		}
	}
	lockRead sync.RWMutex
}

func (mock *proxyReaderMock) Read(ctx context.Context, rawShop string) proxy.Document {
	if mock.ReadFunc == nil {
		panic("proxyReaderMock.ReadFunc: method is nil but proxyReader.Read was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		RawShop string
	}{Ctx: ctx, RawShop: rawShop}
	mock.lockRead.Lock()
	mock.calls.Read = append(mock.calls.Read, callInfo)
	mock.lockRead.Unlock()
	return mock.ReadFunc(ctx, rawShop)
}

func (mock *proxyReaderMock) ReadCalls() []struct {
	Ctx     context.Context
	RawShop string
} {
	mock.lockRead.RLock()
	calls := mock.calls.Read
	mock.lockRead.RUnlock()
	return calls
}

var _ regenerator = &regeneratorMock{}

type regeneratorMock struct {
	RegenerateFunc func(ctx context.Context, shop string) (llmstxt.Result, error)

	calls struct {
		Regenerate []struct {
			Ctx  context.Context
			Shop string
		}
	}
	lockRegenerate sync.RWMutex
}

func (mock *regeneratorMock) Regenerate(ctx context.Context, shop string) (llmstxt.Result, error) {
	if mock.RegenerateFunc == nil {
		panic("regeneratorMock.RegenerateFunc: method is nil but regenerator.Regenerate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Shop string
	}{Ctx: ctx, Shop: shop}
	mock.lockRegenerate.Lock()
	mock.calls.Regenerate = append(mock.calls.Regenerate, callInfo)
	mock.lockRegenerate.Unlock()
	return mock.RegenerateFunc(ctx, shop)
}

func (mock *regeneratorMock) RegenerateCalls() []struct {
	Ctx  context.Context
	Shop string
} {
	mock.lockRegenerate.RLock()
	calls := mock.calls.Regenerate
	mock.lockRegenerate.RUnlock()
	return calls
}

var _ subscriptionUpdater = &subscriptionUpdaterMock{}

type subscriptionUpdaterMock struct {
	VerifyFunc      func(body []byte, signature string) error
	ApplyUpdateFunc func(ctx context.Context, shop string, in billing.AppSubscription) error

	calls struct {
		Verify []struct {
			Body      []byte
			Signature string
		}
		ApplyUpdate []struct {
			Ctx  context.Context
			Shop string
			In   billing.AppSubscription
		}
	}
	lockVerify      sync.RWMutex
	lockApplyUpdate sync.RWMutex
}

func (mock *subscriptionUpdaterMock) Verify(body []byte, signature string) error {
	if mock.VerifyFunc == nil {
		panic("subscriptionUpdaterMock.VerifyFunc: method is nil but subscriptionUpdater.Verify was just called")
	}
	callInfo := struct {
		Body      []byte
		Signature string
	}{Body: body, Signature: signature}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(body, signature)
}

func (mock *subscriptionUpdaterMock) VerifyCalls() []struct {
	Body      []byte
	Signature string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}

func (mock *subscriptionUpdaterMock) ApplyUpdate(ctx context.Context, shop string, in billing.AppSubscription) error {
	if mock.ApplyUpdateFunc == nil {
		panic("subscriptionUpdaterMock.ApplyUpdateFunc: method is nil but subscriptionUpdater.ApplyUpdate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Shop string
		In   billing.AppSubscription
	}{Ctx: ctx, Shop: shop, In: in}
	mock.lockApplyUpdate.Lock()
	mock.calls.ApplyUpdate = append(mock.calls.ApplyUpdate, callInfo)
	mock.lockApplyUpdate.Unlock()
	return mock.ApplyUpdateFunc(ctx, shop, in)
}

func (mock *subscriptionUpdaterMock) ApplyUpdateCalls() []struct {
	Ctx  context.Context
	Shop string
	In   billing.AppSubscription
} {
	mock.lockApplyUpdate.RLock()
	calls := mock.calls.ApplyUpdate
	mock.lockApplyUpdate.RUnlock()
	return calls
}
