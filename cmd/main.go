package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/m3uify/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		// Usage and credential problems have already been explained on stdout.
		if !errors.Is(err, shared.ErrUsage) && !errors.Is(err, shared.ErrMissingConfig) &&
			!errors.Is(err, shared.ErrMissingCredentials) {
			runner.logger.Error("export failed", "error", err)
		}
		os.Exit(1)
	}
}
