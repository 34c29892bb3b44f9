package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pet-wellness-web/internal/cli"
)

// @title			Pet Wellness Web API
// @version		1.0
// @description	JSON proxy del web client hacia el backend de Pet Wellness.
// @BasePath		/api
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
