// fetchwire - connection probe and networking layer for segmented downloads.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fetchwire/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fetchwire: %v\n", err)
		os.Exit(1)
	}
}
