package gateway

import (
	"errors"
	"net/http"
	"testing"

	"btc-payment-core/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestStatusError(t *testing.T) {
	assert.Equal(t, CauseUpstream, statusError(http.StatusInternalServerError, nil).Cause)
	assert.Equal(t, CauseTimeout, statusError(http.StatusGatewayTimeout, nil).Cause)
	assert.Equal(t, CauseHTTP, statusError(http.StatusUnauthorized, nil).Cause)
}

func TestToAppError_PassThrough(t *testing.T) {
	assert.Nil(t, ToAppError(nil))

	cfgErr := apperror.ErrConfiguration("missing")
	assert.Same(t, cfgErr, ToAppError(cfgErr))

	plain := errors.New("boom")
	assert.True(t, apperror.HasCode(ToAppError(plain), apperror.CodePersistence))
}

func TestError_Message(t *testing.T) {
	e := &Error{Status: 503, Body: []byte("down"), Cause: CauseUpstream}
	assert.Equal(t, "processor UPSTREAM_5XX: status 503: down", e.Error())

	e = &Error{Cause: CauseConnect, Err: errors.New("refused")}
	assert.Equal(t, "processor CONNECT: refused", e.Error())
	assert.ErrorIs(t, e, e.Err)
}
