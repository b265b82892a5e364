package fetcher

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

var _ Origin = &OriginMock{}

type OriginMock struct {
	DoFunc func(ctx context.Context, tenant domain.Tenant, query string, operationName string, variables map[string]any) (json.RawMessage, error)

	calls struct {
		Do []struct {
			Ctx           context.Context
			Tenant        domain.Tenant
			Query         string
			OperationName string
			Variables     map[string]any
		}
	}
	lockDo sync.RWMutex
}

func (mock *OriginMock) Do(ctx context.Context, tenant domain.Tenant, query string, operationName string, variables map[string]any) (json.RawMessage, error) {
	if mock.DoFunc == nil {
		panic("OriginMock.DoFunc: method is nil but Origin.Do was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		Tenant        domain.Tenant
		Query         string
		OperationName string
		Variables     map[string]any
	}{Ctx: ctx, Tenant: tenant, Query: query, OperationName: operationName, Variables: variables}
	mock.lockDo.Lock()
	mock.calls.Do = append(mock.calls.Do, callInfo)
	mock.lockDo.Unlock()
	return mock.DoFunc(ctx, tenant, query, operationName, variables)
}

func (mock *OriginMock) DoCalls() []struct {
	Ctx           context.Context
	Tenant        domain.Tenant
	Query         string
	OperationName string
	Variables     map[string]any
} {
	mock.lockDo.RLock()
	calls := mock.calls.Do
	mock.lockDo.RUnlock()
	return calls
}
