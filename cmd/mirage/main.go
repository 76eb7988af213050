// Command mirage sums the extrapolated values of every history in a file.
//
//	mirage [-input input.txt] [-mode next|previous] [-workers N] [-config run.hcl] [-v] [-stats]
//	mirage -generate N [-length 21] [-degree 3] [-seed 1] > input.txt
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/mirage/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := app.Mirage.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
