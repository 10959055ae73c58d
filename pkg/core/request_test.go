package core

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest(http.MethodGet, "/0/public/Time")

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/0/public/Time", req.Path)
	assert.NotNil(t, req.Headers)
	assert.Equal(t, AccessPublic, req.Access)
	assert.Equal(t, 1, req.Cost)
}

func TestNewEndpointRequest(t *testing.T) {
	req := NewEndpointRequest(PrivateEndpoint(OpLedgers, 2))

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/0/private/Ledgers", req.Path)
	assert.Equal(t, AccessPrivate, req.Access)
	assert.Equal(t, 2, req.Cost)

	req = NewEndpointRequest(Endpoint{Op: OpTime, Method: http.MethodGet, Path: "/0/public/Time"})
	assert.Equal(t, 1, req.Cost, "zero cost falls back to one")
}

func TestRequest_Chained(t *testing.T) {
	req := NewRequest(http.MethodPost, "/0/private/Balance").
		SetQuery(NewParams("a", "1")).
		SetFormBody("nonce=1").
		SetHeader("API-Key", "k").
		SetAccess(AccessPrivate).
		SetCost(3)

	assert.Equal(t, "a=1", req.Query.Encode())
	assert.Equal(t, "nonce=1", req.Body)
	assert.Equal(t, "k", req.Headers["API-Key"])
	assert.Equal(t, AccessPrivate, req.Access)
	assert.Equal(t, 3, req.Cost)
}

func TestRequest_SetHeaderOnZeroValue(t *testing.T) {
	var req Request
	req.SetHeader("X", "y")
	assert.Equal(t, "y", req.Headers["X"])
}

func TestEndpoint(t *testing.T) {
	pub := PublicEndpoint(OpTicker)
	assert.Equal(t, http.MethodGet, pub.Method)
	assert.Equal(t, "/0/public/Ticker", pub.Path)
	assert.False(t, pub.IsPrivate())
	assert.Equal(t, "public", pub.Access.String())

	priv := PrivateEndpoint(OpBalance, 1)
	assert.Equal(t, http.MethodPost, priv.Method)
	assert.Equal(t, "/0/private/Balance", priv.Path)
	assert.True(t, priv.IsPrivate())
	assert.Equal(t, "private", priv.Access.String())
}
