package kraken

import (
	"context"
	"fmt"
	"slices"

	"kraken/internal/envelope"
	"kraken/pkg/core"
)

// endpoints is the catalogue. Private endpoints that scan history cost two points of
// the exchange's call counter, everything else costs one.
var endpoints = map[core.Operation]core.Endpoint{
	core.OpTime:         core.PublicEndpoint(core.OpTime),
	core.OpSystemStatus: core.PublicEndpoint(core.OpSystemStatus),
	core.OpAssets:       core.PublicEndpoint(core.OpAssets),
	core.OpAssetPairs:   core.PublicEndpoint(core.OpAssetPairs),
	core.OpTicker:       core.PublicEndpoint(core.OpTicker),
	core.OpOHLC:         core.PublicEndpoint(core.OpOHLC),
	core.OpDepth:        core.PublicEndpoint(core.OpDepth),
	core.OpTrades:       core.PublicEndpoint(core.OpTrades),
	core.OpSpread:       core.PublicEndpoint(core.OpSpread),

	core.OpBalance:       core.PrivateEndpoint(core.OpBalance, 1),
	core.OpBalanceEx:     core.PrivateEndpoint(core.OpBalanceEx, 1),
	core.OpTradeBalance:  core.PrivateEndpoint(core.OpTradeBalance, 1),
	core.OpOpenOrders:    core.PrivateEndpoint(core.OpOpenOrders, 1),
	core.OpClosedOrders:  core.PrivateEndpoint(core.OpClosedOrders, 1),
	core.OpQueryOrders:   core.PrivateEndpoint(core.OpQueryOrders, 1),
	core.OpTradesHistory: core.PrivateEndpoint(core.OpTradesHistory, 2),
	core.OpQueryTrades:   core.PrivateEndpoint(core.OpQueryTrades, 1),
	core.OpOpenPositions: core.PrivateEndpoint(core.OpOpenPositions, 1),
	core.OpLedgers:       core.PrivateEndpoint(core.OpLedgers, 2),
	core.OpQueryLedgers:  core.PrivateEndpoint(core.OpQueryLedgers, 2),
	core.OpTradeVolume:   core.PrivateEndpoint(core.OpTradeVolume, 1),
}

// Endpoint returns the descriptor of op.
func Endpoint(op core.Operation) (core.Endpoint, bool) {
	ep, ok := endpoints[op]
	return ep, ok
}

// Endpoints returns every descriptor of the catalogue ordered by operation.
func Endpoints() []core.Endpoint {
	out := make([]core.Endpoint, 0, len(endpoints))
	for _, ep := range endpoints {
		out = append(out, ep)
	}
	slices.SortFunc(out, func(a, b core.Endpoint) int {
		return int(a.Op) - int(b.Op)
	})
	return out
}

// Call dispatches op with raw params and returns the raw response body. It is the
// untyped counterpart of the per-endpoint methods.
func (c *Client) Call(ctx context.Context, op core.Operation, params core.Params) ([]byte, error) {
	ep, ok := endpoints[op]
	if !ok {
		return nil, fmt.Errorf("unknown operation %d", op)
	}
	return c.dispatch(ctx, ep, params)
}

func (c *Client) dispatch(ctx context.Context, ep core.Endpoint, params core.Params) ([]byte, error) {
	req := core.NewEndpointRequest(ep)
	if ep.IsPrivate() {
		return c.private(ctx, req, params)
	}
	return c.public(ctx, req, params)
}

// call validates req, dispatches op and decodes the envelope result into T.
func call[T any](ctx context.Context, c *Client, op core.Operation, req request) (T, error) {
	var zero T

	ep, ok := endpoints[op]
	if !ok {
		return zero, fmt.Errorf("unknown operation %d", op)
	}
	if err := validate.Struct(req); err != nil {
		return zero, fmt.Errorf("%w: %s: %w", core.ErrInvalidRequest, op, err)
	}

	body, err := c.dispatch(ctx, ep, req.params())
	if err != nil {
		return zero, err
	}

	result, err := envelope.Decode[T](body)
	if err != nil {
		if e, ok := err.(*core.Error); ok {
			return zero, e.WithPath(ep.Path)
		}
		return zero, err
	}
	return result, nil
}
