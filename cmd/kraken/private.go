package main

import (
	"github.com/urfave/cli/v2"

	"kraken/pkg/kraken"
)

var privateCommands = []*cli.Command{
	{
		Name:     "balance",
		Usage:    "cash balances",
		Category: "private",
		Action: action(true, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.Balance(ctx.Context)
		}),
	},
	{
		Name:     "balance-ex",
		Usage:    "extended balances",
		Category: "private",
		Action: action(true, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.BalanceEx(ctx.Context)
		}),
	},
	{
		Name:     "trade-balance",
		Usage:    "margin trade balance",
		Category: "private",
		Flags:    []cli.Flag{&cli.StringFlag{Name: "asset", Usage: "base `asset`"}},
		Action: action(true, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.TradeBalance(ctx.Context, kraken.TradeBalanceRequest{Asset: ctx.String("asset")})
		}),
	},
	{
		Name:     "open-orders",
		Usage:    "open orders",
		Category: "private",
		Flags:    []cli.Flag{tradesFlag, userRefFlag},
		Action: action(true, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.OpenOrders(ctx.Context, kraken.OpenOrdersRequest{
				Trades:  ctx.Bool(tradesFlag.Name),
				UserRef: ctx.Int64(userRefFlag.Name),
			})
		}),
	},
	{
		Name:     "closed-orders",
		Usage:    "closed orders",
		Category: "private",
		Flags: []cli.Flag{
			tradesFlag, userRefFlag, startFlag, endFlag, offsetFlag,
			&cli.StringFlag{Name: "closetime", Usage: "open, close or both"},
		},
		Action: action(true, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.ClosedOrders(ctx.Context, kraken.ClosedOrdersRequest{
				Trades:    ctx.Bool(tradesFlag.Name),
				UserRef:   ctx.Int64(userRefFlag.Name),
				Start:     ctx.String(startFlag.Name),
				End:       ctx.String(endFlag.Name),
				Offset:    ctx.Int(offsetFlag.Name),
				CloseTime: ctx.String("closetime"),
			})
		}),
	},
	{
		Name:      "query-orders",
		Usage:     "orders by transaction id",
		Category:  "private",
		ArgsUsage: "TXID...",
		Flags:     []cli.Flag{tradesFlag, userRefFlag},
		Action: action(true, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.QueryOrders(ctx.Context, kraken.QueryOrdersRequest{
				TxIDs:   ctx.Args().Slice(),
				Trades:  ctx.Bool(tradesFlag.Name),
				UserRef: ctx.Int64(userRefFlag.Name),
			})
		}),
	},
	{
		Name:     "trades-history",
		Usage:    "trade history",
		Category: "private",
		Flags: []cli.Flag{
			tradesFlag, startFlag, endFlag, offsetFlag,
			&cli.StringFlag{Name: "type", Usage: "all, any_position, closed_position, closing_position or no_position"},
		},
		Action: action(true, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.TradesHistory(ctx.Context, kraken.TradesHistoryRequest{
				Type:   ctx.String("type"),
				Trades: ctx.Bool(tradesFlag.Name),
				Start:  ctx.String(startFlag.Name),
				End:    ctx.String(endFlag.Name),
				Offset: ctx.Int(offsetFlag.Name),
			})
		}),
	},
	{
		Name:      "query-trades",
		Usage:     "trades by transaction id",
		Category:  "private",
		ArgsUsage: "TXID...",
		Flags:     []cli.Flag{tradesFlag},
		Action: action(true, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.QueryTrades(ctx.Context, kraken.QueryTradesRequest{
				TxIDs:  ctx.Args().Slice(),
				Trades: ctx.Bool(tradesFlag.Name),
			})
		}),
	},
	{
		Name:      "positions",
		Usage:     "open margin positions",
		Category:  "private",
		ArgsUsage: "[TXID...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "docalcs", Usage: "include profit and loss"},
			&cli.StringFlag{Name: "consolidation", Usage: "consolidate by market"},
		},
		Action: action(true, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.OpenPositions(ctx.Context, kraken.OpenPositionsRequest{
				TxIDs:         ctx.Args().Slice(),
				DoCalcs:       ctx.Bool("docalcs"),
				Consolidation: ctx.String("consolidation"),
			})
		}),
	},
	{
		Name:     "ledgers",
		Usage:    "ledger entries",
		Category: "private",
		Flags: []cli.Flag{
			assetsFlag, aclassFlag, startFlag, endFlag, offsetFlag,
			&cli.StringFlag{Name: "type", Usage: "ledger entry `type`"},
		},
		Action: action(true, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.Ledgers(ctx.Context, kraken.LedgersRequest{
				Assets: ctx.StringSlice(assetsFlag.Name),
				AClass: ctx.String(aclassFlag.Name),
				Type:   ctx.String("type"),
				Start:  ctx.String(startFlag.Name),
				End:    ctx.String(endFlag.Name),
				Offset: ctx.Int(offsetFlag.Name),
			})
		}),
	},
	{
		Name:      "query-ledgers",
		Usage:     "ledger entries by id",
		Category:  "private",
		ArgsUsage: "ID...",
		Flags:     []cli.Flag{tradesFlag},
		Action: action(true, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.QueryLedgers(ctx.Context, kraken.QueryLedgersRequest{
				IDs:    ctx.Args().Slice(),
				Trades: ctx.Bool(tradesFlag.Name),
			})
		}),
	},
	{
		Name:     "volume",
		Usage:    "30 day trade volume and fee tiers",
		Category: "private",
		Flags:    []cli.Flag{pairsFlag},
		Action: action(true, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.TradeVolume(ctx.Context, kraken.TradeVolumeRequest{Pairs: ctx.StringSlice(pairsFlag.Name)})
		}),
	},
}
