package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"fjacquet/expense-tracker/cmd/add"
	"fjacquet/expense-tracker/cmd/categorize"
	"fjacquet/expense-tracker/cmd/edit"
	"fjacquet/expense-tracker/cmd/importcmd"
	"fjacquet/expense-tracker/cmd/learn"
	"fjacquet/expense-tracker/cmd/merchants"
	"fjacquet/expense-tracker/cmd/recategorize"
	"fjacquet/expense-tracker/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(learn.Cmd)
	root.Cmd.AddCommand(recategorize.Cmd)
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(importcmd.ImportCmd)
	root.Cmd.AddCommand(importcmd.ExportCmd)
	root.Cmd.AddCommand(merchants.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
