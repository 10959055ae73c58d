package kraken

import (
	"context"

	"kraken/pkg/core"
)

// Time returns the exchange server time.
func (c *Client) Time(ctx context.Context) (core.Time, error) {
	return call[core.Time](ctx, c, core.OpTime, noParams{})
}

// SystemStatus returns whether the exchange is online, in maintenance or in a restricted mode.
func (c *Client) SystemStatus(ctx context.Context) (core.SystemStatus, error) {
	return call[core.SystemStatus](ctx, c, core.OpSystemStatus, noParams{})
}

// Assets returns asset information keyed by asset name.
func (c *Client) Assets(ctx context.Context, req AssetsRequest) (map[string]core.Asset, error) {
	return call[map[string]core.Asset](ctx, c, core.OpAssets, req)
}

// AssetPairs returns tradable pairs keyed by pair name.
func (c *Client) AssetPairs(ctx context.Context, req AssetPairsRequest) (map[string]core.AssetPair, error) {
	return call[map[string]core.AssetPair](ctx, c, core.OpAssetPairs, req)
}

// Ticker returns ticker information keyed by pair name.
func (c *Client) Ticker(ctx context.Context, req TickerRequest) (map[string]core.Ticker, error) {
	return call[map[string]core.Ticker](ctx, c, core.OpTicker, req)
}

// OHLC returns candles and the cursor for the next poll.
func (c *Client) OHLC(ctx context.Context, req OHLCRequest) (core.OHLC, error) {
	return call[core.OHLC](ctx, c, core.OpOHLC, req)
}

// Depth returns the order book keyed by pair name.
func (c *Client) Depth(ctx context.Context, req DepthRequest) (map[string]core.Depth, error) {
	return call[map[string]core.Depth](ctx, c, core.OpDepth, req)
}

// Trades returns recent public trades and the cursor for the next poll.
func (c *Client) Trades(ctx context.Context, req TradesRequest) (core.Trades, error) {
	return call[core.Trades](ctx, c, core.OpTrades, req)
}

// Spread returns recent best bid and ask entries and the cursor for the next poll.
func (c *Client) Spread(ctx context.Context, req SpreadRequest) (core.Spread, error) {
	return call[core.Spread](ctx, c, core.OpSpread, req)
}
