package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/gogpu/ren"
)

func setupLogging(ctx *cli.Context) error {
	if ctx.GlobalBool("v") {
		ren.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	return nil
}
