// Package main provides the entry point for the txn-categorizer CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fjacquet/txn-categorizer/cmd/batch"
	"fjacquet/txn-categorizer/cmd/categorize"
	"fjacquet/txn-categorizer/cmd/patterns"
	"fjacquet/txn-categorizer/cmd/root"
	"fjacquet/txn-categorizer/cmd/similar"
	"fjacquet/txn-categorizer/cmd/suggest"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
	root.Cmd.AddCommand(similar.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(patterns.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
