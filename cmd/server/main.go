// Command server runs the sweet shop HTTP API.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment; run with -h to list the variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/sweetshop-backend/internal/app"
	"github.com/heartmarshall/sweetshop-backend/internal/config"
)

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s\n\n", os.Args[0])
		config.Usage(out)
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		stop()
		os.Exit(1)
	}
}
