package middleware

import (
	"sync"
)

var _ SessionVerifier = &sessionVerifierMock{}

type sessionVerifierMock struct {
	VerifySessionTokenFunc func(token string) (string, error)

	calls struct {
		VerifySessionToken []struct {
			Token string
		}
	}
	lockVerifySessionToken sync.RWMutex
}

func (mock *sessionVerifierMock) VerifySessionToken(token string) (string, error) {
	if mock.VerifySessionTokenFunc == nil {
		panic("sessionVerifierMock.VerifySessionTokenFunc: method is nil but SessionVerifier.VerifySessionToken was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockVerifySessionToken.Lock()
	mock.calls.VerifySessionToken = append(mock.calls.VerifySessionToken, callInfo)
	mock.lockVerifySessionToken.Unlock()
	return mock.VerifySessionTokenFunc(token)
}

func (mock *sessionVerifierMock) VerifySessionTokenCalls() []struct {
	Token string
} {
	mock.lockVerifySessionToken.RLock()
	calls := mock.calls.VerifySessionToken
	mock.lockVerifySessionToken.RUnlock()
	return calls
}
