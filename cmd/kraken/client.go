package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"kraken/pkg/core"
	"kraken/pkg/kraken"
)

var stdout io.Writer = os.Stdout

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

func newClient(ctx *cli.Context, private bool) (*kraken.Client, error) {
	config := core.DefaultConfig().
		WithBaseURL(ctx.String(urlFlag.Name)).
		WithTimeout(ctx.Duration(timeoutFlag.Name)).
		WithLogLevel(ctx.String(logLevelFlag.Name))
	if ctx.Bool(throttleFlag.Name) {
		config.WithRateLimit(core.DefaultRateLimitConfig())
	}
	if ctx.Bool(breakerFlag.Name) {
		config.WithCircuitBreaker(core.DefaultCircuitBreakerConfig())
	}

	opts := []kraken.Option{
		kraken.WithConfig(config),
		kraken.WithLogger(newLogger()),
	}
	if private {
		cred, err := core.NewCredential(ctx.String(keyFlag.Name), ctx.String(secretFlag.Name))
		if err != nil {
			return nil, fmt.Errorf("load credential from --key/--secret or KRAKEN_KEY/KRAKEN_SECRET: %w", err)
		}
		opts = append(opts, kraken.WithCredential(cred))
	}
	return kraken.New(opts...)
}

// action wraps an endpoint call: it builds the client, runs fn and prints its result.
func action(private bool, fn func(ctx *cli.Context, c *kraken.Client) (any, error)) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		client, err := newClient(ctx, private)
		if err != nil {
			return err
		}
		defer client.Close()

		result, err := fn(ctx, client)
		if err != nil {
			return err
		}
		return printJSON(result)
	}
}

func printJSON(v any) error {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

func formatError(err error) string {
	var e *core.Error
	if !errors.As(err, &e) {
		return aurora.Red(err.Error()).String()
	}

	var kind aurora.Value
	switch e.Kind {
	case core.KindAPI:
		kind = aurora.Yellow(e.Kind.String())
	case core.KindTransport:
		kind = aurora.Magenta(e.Kind.String())
	default:
		kind = aurora.Red(e.Kind.String())
	}
	return fmt.Sprintf("%s %s", aurora.Bold(kind), err.Error())
}
