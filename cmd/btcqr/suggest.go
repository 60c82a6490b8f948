package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var suggest = cli.Command{
	Name:      "suggest",
	Usage:     "list the seed words starting with the given prefix",
	ArgsUsage: "<prefix>",
	Action:    suggestAction,
}

var classify = cli.Command{
	Name:      "classify",
	Usage:     "detect the script type of a wallet descriptor",
	ArgsUsage: "<descriptor>",
	Action:    classifyAction,
}

func suggestAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return &invalidUsageError{ctx, "suggest"}
	}

	svc, err := getQRService(ctx, outputPayload)
	if err != nil {
		return err
	}

	for _, word := range svc.Suggest(ctx.Args().First()) {
		fmt.Fprintln(ctx.App.Writer, word)
	}
	return nil
}

func classifyAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return &invalidUsageError{ctx, "classify"}
	}

	svc, err := getQRService(ctx, outputPayload)
	if err != nil {
		return err
	}

	info := svc.ClassifyDescriptor(ctx.Args().First())
	w := ctx.App.Writer
	fmt.Fprintln(w, "type:", info.Type)
	fmt.Fprintln(w, "label:", info.Label)
	fmt.Fprintln(w, "valid:", info.Valid)
	return nil
}
