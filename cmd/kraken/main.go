package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v2"
)

var app *cli.App

func init() {
	app = &cli.App{
		Name:    filepath.Base(os.Args[0]),
		Usage:   "query the Kraken REST API",
		Version: "0.1.0",
	}

	app.Flags = []cli.Flag{
		keyFlag,
		secretFlag,
		urlFlag,
		timeoutFlag,
		logLevelFlag,
		throttleFlag,
		breakerFlag,
	}
	app.Commands = append(publicCommands, privateCommands...)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		cancel()
	}()

	if err := app.RunContext(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}
