package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/meghashyamc/planedemo/app"
	"github.com/meghashyamc/planedemo/config"
	"github.com/meghashyamc/planedemo/logger"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	if err := cfg.BindFlags(pflag.CommandLine); err != nil {
		fmt.Fprintf(os.Stderr, "failed to bind flags: %s\n", err)
		os.Exit(1)
	}
	pflag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %s\n", err)
		os.Exit(1)
	}

	a := app.New(cfg, logger.New(cfg.GetLogLevel()))
	if err := a.Run(); err != nil {
		slog.Error("error running app", "err", err)
		os.Exit(1)
	}
}
