package main

import (
	"context"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"flora-partner-assignment/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.MustBuildContainer(ctx)
	app.NewRunner().MustRun(container)
}
