package core

// Operation identifies one REST endpoint of the exchange.
type Operation int

// Operation constants, public endpoints first.
const (
	// OpTime retrieves the server time.
	OpTime Operation = iota
	// OpSystemStatus retrieves the current system status.
	OpSystemStatus
	// OpAssets retrieves asset information.
	OpAssets
	// OpAssetPairs retrieves tradable asset pairs.
	OpAssetPairs
	// OpTicker retrieves ticker information.
	OpTicker
	// OpOHLC retrieves candlestick data.
	OpOHLC
	// OpDepth retrieves the order book.
	OpDepth
	// OpTrades retrieves recent trades.
	OpTrades
	// OpSpread retrieves recent spreads.
	OpSpread
	// OpBalance retrieves cash balances.
	OpBalance
	// OpBalanceEx retrieves extended balances including held amounts.
	OpBalanceEx
	// OpTradeBalance retrieves the margin trade balance summary.
	OpTradeBalance
	// OpOpenOrders retrieves open orders.
	OpOpenOrders
	// OpClosedOrders retrieves closed orders.
	OpClosedOrders
	// OpQueryOrders retrieves specific orders.
	OpQueryOrders
	// OpTradesHistory retrieves the trade history.
	OpTradesHistory
	// OpQueryTrades retrieves specific trades.
	OpQueryTrades
	// OpOpenPositions retrieves open margin positions.
	OpOpenPositions
	// OpLedgers retrieves ledger entries.
	OpLedgers
	// OpQueryLedgers retrieves specific ledger entries.
	OpQueryLedgers
	// OpTradeVolume retrieves the 30 day trade volume and fee tiers.
	OpTradeVolume
)

// String returns the API method name, which is also the last path segment.
func (o Operation) String() string {
	return [...]string{
		"Time",
		"SystemStatus",
		"Assets",
		"AssetPairs",
		"Ticker",
		"OHLC",
		"Depth",
		"Trades",
		"Spread",
		"Balance",
		"BalanceEx",
		"TradeBalance",
		"OpenOrders",
		"ClosedOrders",
		"QueryOrders",
		"TradesHistory",
		"QueryTrades",
		"OpenPositions",
		"Ledgers",
		"QueryLedgers",
		"TradeVolume",
	}[o]
}
