package main

import (
	"fmt"
	"strings"

	"github.com/tdex-network/btcqr/internal/core/domain"
	"github.com/urfave/cli/v2"
)

var descriptor = cli.Command{
	Name:      "descriptor",
	Usage:     "encode a wallet output descriptor",
	ArgsUsage: "<descriptor>",
	Flags: []cli.Flag{
		&exampleFlag,
		&outFlag,
		&plainFlag,
	},
	Action: descriptorAction,
}

func descriptorAction(ctx *cli.Context) error {
	text := strings.Join(ctx.Args().Slice(), " ")
	if ctx.Bool("example") {
		text = domain.ExampleDescriptor
	}
	if strings.TrimSpace(text) == "" {
		return &invalidUsageError{ctx, "descriptor"}
	}

	if ctx.String("out") != outputPayload && domain.IsValidDescriptor(text) {
		fmt.Fprintf(
			ctx.App.Writer, "Detected type: %s\n",
			domain.ClassifyDescriptor(text).Label(),
		)
	}

	return printQR(ctx, domain.Descriptor(text))
}
