// Command part1 prints the sum of the next values of every history in input.txt.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/mirage/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := app.Part1.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
