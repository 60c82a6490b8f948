package main

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/tdex-network/btcqr/internal/core/domain"
	"github.com/urfave/cli/v2"
)

var (
	addressFlag = cli.StringFlag{
		Name:  "address",
		Usage: "the bitcoin address to pay to",
	}
	amountFlag = cli.StringFlag{
		Name:  "amount",
		Usage: "optional amount in BTC",
	}
	labelFlag = cli.StringFlag{
		Name:  "label",
		Usage: "optional label for the recipient",
	}
	messageFlag = cli.StringFlag{
		Name:  "message",
		Usage: "optional message describing the payment",
	}
)

var tx = cli.Command{
	Name:  "tx",
	Usage: "encode a payment request or a transaction",
	Subcommands: []*cli.Command{
		{
			Name:  "uri",
			Usage: "encode a bitcoin: payment URI",
			Flags: []cli.Flag{
				&addressFlag,
				&amountFlag,
				&labelFlag,
				&messageFlag,
				&exampleFlag,
				&outFlag,
				&plainFlag,
			},
			Action: txURIAction,
		},
		{
			Name:      "psbt",
			Usage:     "encode a base64 partially signed transaction",
			ArgsUsage: "<base64>",
			Flags:     []cli.Flag{&exampleFlag, &outFlag, &plainFlag},
			Action:    txDataAction(domain.FormatPSBT),
		},
		{
			Name:      "raw",
			Usage:     "encode a hex raw transaction",
			ArgsUsage: "<hex>",
			Flags:     []cli.Flag{&exampleFlag, &outFlag, &plainFlag},
			Action:    txDataAction(domain.FormatRawTx),
		},
	},
}

func txURIAction(ctx *cli.Context) error {
	form, _ := domain.NewTransactionForm(domain.FormatPaymentURI)
	if ctx.Bool("example") {
		form.LoadExample()
	} else {
		form.Address = ctx.String("address")
		form.Amount = ctx.String("amount")
		form.Label = ctx.String("label")
		form.Message = ctx.String("message")
	}

	if ctx.String("out") != outputPayload && strings.TrimSpace(form.Amount) != "" {
		if amount, err := domain.ParseAmount(form.Amount); err == nil {
			if sats, err := btcutil.NewAmount(amount.InexactFloat64()); err == nil {
				fmt.Fprintf(
					ctx.App.Writer, "Amount: %s (%d sats)\n", sats, int64(sats),
				)
			}
		}
	}

	return printQR(ctx, form)
}

func txDataAction(format domain.TransactionFormat) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		form, _ := domain.NewTransactionForm(format)
		if ctx.Bool("example") {
			form.LoadExample()
		} else {
			form.Data = strings.Join(ctx.Args().Slice(), " ")
		}
		if form.Data == "" {
			return &invalidUsageError{ctx, string(format)}
		}

		return printQR(ctx, form)
	}
}
