package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/phishcheck/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	phishRunner, err := runner.New(cliOpts)
	if err != nil {
		gologger.Fatal().Msgf("could not create runner: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := phishRunner.Run(ctx); err != nil {
		gologger.Fatal().Msgf("failed to classify input got %v", err)
	}
}
