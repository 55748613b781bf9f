package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/five82/bunyan/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		prefix := color.New(color.FgRed, color.Bold).Sprint("bunyan:")
		fmt.Fprintf(os.Stderr, "%s %v\n", prefix, err)
		return 1
	}
	return 0
}
