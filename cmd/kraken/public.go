package main

import (
	"github.com/urfave/cli/v2"

	"kraken/pkg/core"
	"kraken/pkg/kraken"
)

var publicCommands = []*cli.Command{
	{
		Name:     "time",
		Usage:    "server time",
		Category: "public",
		Action: action(false, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.Time(ctx.Context)
		}),
	},
	{
		Name:     "status",
		Usage:    "system status",
		Category: "public",
		Action: action(false, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.SystemStatus(ctx.Context)
		}),
	},
	{
		Name:     "assets",
		Usage:    "asset information",
		Category: "public",
		Flags:    []cli.Flag{assetsFlag, aclassFlag},
		Action: action(false, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.Assets(ctx.Context, kraken.AssetsRequest{
				Assets: ctx.StringSlice(assetsFlag.Name),
				AClass: ctx.String(aclassFlag.Name),
			})
		}),
	},
	{
		Name:     "pairs",
		Usage:    "tradable asset pairs",
		Category: "public",
		Flags: []cli.Flag{
			pairsFlag,
			&cli.StringFlag{Name: "info", Usage: "info, leverage, fees or margin"},
		},
		Action: action(false, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.AssetPairs(ctx.Context, kraken.AssetPairsRequest{
				Pairs: ctx.StringSlice(pairsFlag.Name),
				Info:  ctx.String("info"),
			})
		}),
	},
	{
		Name:      "ticker",
		Usage:     "ticker information",
		Category:  "public",
		ArgsUsage: "PAIR...",
		Action: action(false, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.Ticker(ctx.Context, kraken.TickerRequest{Pairs: ctx.Args().Slice()})
		}),
	},
	{
		Name:     "ohlc",
		Usage:    "candles",
		Category: "public",
		Flags: []cli.Flag{
			pairFlag,
			&cli.IntFlag{Name: "interval", Aliases: []string{"i"}, Usage: "candle width in `minutes`"},
			sinceFlag,
		},
		Action: action(false, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.OHLC(ctx.Context, kraken.OHLCRequest{
				Pair:     ctx.String(pairFlag.Name),
				Interval: core.Interval(ctx.Int("interval")),
				Since:    ctx.Int64(sinceFlag.Name),
			})
		}),
	},
	{
		Name:     "depth",
		Usage:    "order book",
		Category: "public",
		Flags:    []cli.Flag{pairFlag, countFlag},
		Action: action(false, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.Depth(ctx.Context, kraken.DepthRequest{
				Pair:  ctx.String(pairFlag.Name),
				Count: ctx.Int(countFlag.Name),
			})
		}),
	},
	{
		Name:     "trades",
		Usage:    "recent public trades",
		Category: "public",
		Flags:    []cli.Flag{pairFlag, sinceFlag, countFlag},
		Action: action(false, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.Trades(ctx.Context, kraken.TradesRequest{
				Pair:  ctx.String(pairFlag.Name),
				Since: ctx.Int64(sinceFlag.Name),
				Count: ctx.Int(countFlag.Name),
			})
		}),
	},
	{
		Name:     "spread",
		Usage:    "recent spreads",
		Category: "public",
		Flags:    []cli.Flag{pairFlag, sinceFlag},
		Action: action(false, func(ctx *cli.Context, c *kraken.Client) (any, error) {
			return c.Spread(ctx.Context, kraken.SpreadRequest{
				Pair:  ctx.String(pairFlag.Name),
				Since: ctx.Int64(sinceFlag.Name),
			})
		}),
	},
}
