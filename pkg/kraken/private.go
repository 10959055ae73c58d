package kraken

import (
	"context"

	"kraken/pkg/core"
)

// Balance returns cash balances keyed by asset, net of pending withdrawals.
func (c *Client) Balance(ctx context.Context) (map[string]core.Amount, error) {
	return call[map[string]core.Amount](ctx, c, core.OpBalance, noParams{})
}

// BalanceEx returns balances including credit and amounts held by open orders.
func (c *Client) BalanceEx(ctx context.Context) (map[string]core.ExtendedBalance, error) {
	return call[map[string]core.ExtendedBalance](ctx, c, core.OpBalanceEx, noParams{})
}

func (c *Client) TradeBalance(ctx context.Context, req TradeBalanceRequest) (core.TradeBalance, error) {
	return call[core.TradeBalance](ctx, c, core.OpTradeBalance, req)
}

func (c *Client) OpenOrders(ctx context.Context, req OpenOrdersRequest) (core.OpenOrders, error) {
	return call[core.OpenOrders](ctx, c, core.OpOpenOrders, req)
}

// ClosedOrders returns at most 50 closed orders per call; page with Offset.
func (c *Client) ClosedOrders(ctx context.Context, req ClosedOrdersRequest) (core.ClosedOrders, error) {
	return call[core.ClosedOrders](ctx, c, core.OpClosedOrders, req)
}

// QueryOrders returns the given orders keyed by transaction id.
func (c *Client) QueryOrders(ctx context.Context, req QueryOrdersRequest) (map[string]core.Order, error) {
	return call[map[string]core.Order](ctx, c, core.OpQueryOrders, req)
}

// TradesHistory returns at most 50 trades per call; page with Offset.
func (c *Client) TradesHistory(ctx context.Context, req TradesHistoryRequest) (core.TradesHistory, error) {
	return call[core.TradesHistory](ctx, c, core.OpTradesHistory, req)
}

func (c *Client) QueryTrades(ctx context.Context, req QueryTradesRequest) (map[string]core.TradeInfo, error) {
	return call[map[string]core.TradeInfo](ctx, c, core.OpQueryTrades, req)
}

func (c *Client) OpenPositions(ctx context.Context, req OpenPositionsRequest) (map[string]core.Position, error) {
	return call[map[string]core.Position](ctx, c, core.OpOpenPositions, req)
}

// Ledgers returns at most 50 ledger entries per call; page with Offset.
func (c *Client) Ledgers(ctx context.Context, req LedgersRequest) (core.Ledgers, error) {
	return call[core.Ledgers](ctx, c, core.OpLedgers, req)
}

func (c *Client) QueryLedgers(ctx context.Context, req QueryLedgersRequest) (map[string]core.LedgerEntry, error) {
	return call[map[string]core.LedgerEntry](ctx, c, core.OpQueryLedgers, req)
}

// TradeVolume returns the 30 day volume and, for the requested pairs, the fee tiers.
func (c *Client) TradeVolume(ctx context.Context, req TradeVolumeRequest) (core.TradeVolume, error) {
	return call[core.TradeVolume](ctx, c, core.OpTradeVolume, req)
}
