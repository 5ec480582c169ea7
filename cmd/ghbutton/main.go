package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/goliatone/go-ghbutton/pkg/prompt"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		if prompt.IsAborted(err) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "ghbutton:", err)
		os.Exit(1)
	}
}
