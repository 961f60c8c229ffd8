package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mntm.dev/fbt/internal/interfaces/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := cli.Execute(ctx, os.Args[1:], cli.Options{})
	if err == nil {
		return
	}

	code := 1
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	cancel()
	os.Exit(code)
}
