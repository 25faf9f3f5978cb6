package main

import (
	"context"
	"fmt"
	"os"
)

// main hands off to the cobra root; every subcommand owns its own wiring.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
