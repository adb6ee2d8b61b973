package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	appkg "github.com/forkful/forkful/internal/app"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "forkful:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := appkg.LoadConfig()
	if err != nil {
		return err
	}

	lg := zap.NewNop()
	if cfg.Debug {
		lg, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = zctx.Base(ctx, lg)

	return appkg.New(cfg, os.Stdout).Run(ctx, os.Args[1:])
}
