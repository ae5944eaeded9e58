// Command lvlath-bc ranks the vertices or edges of a generated graph by
// shortest-path betweenness centrality.
//
//	lvlath-bc nodes --topology grid --rows 10 --cols 10 --format json
//	lvlath-bc edges --topology random --n 200 --density 0.05 --k 50 --workers 4
//	lvlath-bc nodes --config bc.yaml --watch
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/centrality/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
