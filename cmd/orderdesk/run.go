package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run blocks until a signal arrives or a component asks to shut down.
func run(ctx context.Context, app *fx.App) {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "orderdesk: start: %v\n", err)
		os.Exit(1)
	}

	var code int
	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		code = sig.ExitCode
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	err := app.Stop(stopCtx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "orderdesk: stop: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}
