package main

import (
	"time"

	"github.com/urfave/cli/v2"

	"kraken/pkg/core"
)

var (
	keyFlag = &cli.StringFlag{
		Name:    "key",
		EnvVars: []string{"KRAKEN_KEY"},
		Usage:   "API `key` for private endpoints",
	}
	secretFlag = &cli.StringFlag{
		Name:    "secret",
		EnvVars: []string{"KRAKEN_SECRET"},
		Usage:   "base64 API `secret` for private endpoints",
	}
	urlFlag = &cli.StringFlag{
		Name:  "url",
		Value: core.ProductionURL,
		Usage: "API origin `url`",
	}
	timeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Value: 30 * time.Second,
		Usage: "request `timeout`, 0 for none",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Value: "warn",
		Usage: "log `level`: debug, info, warn or error",
	}
	throttleFlag = &cli.BoolFlag{
		Name:  "throttle",
		Usage: "throttle calls to the starter tier limits",
	}
	breakerFlag = &cli.BoolFlag{
		Name:  "breaker",
		Usage: "fail fast after repeated server failures",
	}

	pairFlag = &cli.StringFlag{
		Name:     "pair",
		Aliases:  []string{"p"},
		Usage:    "asset `pair`",
		Required: true,
	}
	pairsFlag = &cli.StringSliceFlag{
		Name:    "pair",
		Aliases: []string{"p"},
		Usage:   "asset `pairs`, repeat or comma separate",
	}
	assetsFlag = &cli.StringSliceFlag{
		Name:    "asset",
		Aliases: []string{"a"},
		Usage:   "`assets`, repeat or comma separate",
	}
	aclassFlag = &cli.StringFlag{
		Name:  "aclass",
		Usage: "asset `class`",
	}
	sinceFlag = &cli.Int64Flag{
		Name:  "since",
		Usage: "return entries newer than `cursor`",
	}
	countFlag = &cli.IntFlag{
		Name:  "count",
		Usage: "maximum number of `entries`",
	}
	tradesFlag = &cli.BoolFlag{
		Name:  "trades",
		Usage: "include related trades",
	}
	userRefFlag = &cli.Int64Flag{
		Name:  "userref",
		Usage: "restrict to user reference `id`",
	}
	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "start unix `time` or id",
	}
	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "end unix `time` or id",
	}
	offsetFlag = &cli.IntFlag{
		Name:  "ofs",
		Usage: "result `offset` for pagination",
	}
)
