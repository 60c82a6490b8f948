package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdex-network/btcqr/internal/core/domain"
	"github.com/tdex-network/btcqr/internal/interfaces/tui"
	"github.com/tyler-smith/go-bip39"
	"github.com/urfave/cli/v2"
)

var (
	wordsFlag = cli.IntFlag{
		Name:  "words",
		Usage: "length of the seed phrase, either 12 or 24",
		Value: domain.ShortSeedPhraseLength,
	}
	interactiveFlag = cli.BoolFlag{
		Name:  "interactive",
		Usage: "type the seed phrase word by word with autocompletion",
	}
	checkFlag = cli.BoolFlag{
		Name:  "check",
		Usage: "warn if the BIP-39 checksum of the seed phrase is not valid",
	}
)

var seed = cli.Command{
	Name:      "seed",
	Usage:     "encode a 12 or 24 words seed phrase",
	ArgsUsage: "[words...]",
	Flags: []cli.Flag{
		&wordsFlag,
		&interactiveFlag,
		&checkFlag,
		&outFlag,
		&plainFlag,
	},
	Action: seedAction,
}

func seedAction(ctx *cli.Context) error {
	words := strings.Fields(strings.Join(ctx.Args().Slice(), " "))

	wordCount := ctx.Int("words")
	if !ctx.IsSet("words") && len(words) == domain.LongSeedPhraseLength {
		wordCount = domain.LongSeedPhraseLength
	}
	phrase, err := domain.NewSeedPhrase(wordCount)
	if err != nil {
		return err
	}

	if ctx.Bool("interactive") {
		svc, err := getQRService(ctx, outputPayload)
		if err != nil {
			return err
		}
		ok, err := tui.ReadSeedPhrase(svc, phrase)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("seed phrase entry cancelled")
		}
	} else {
		if len(words) <= 0 {
			return &invalidUsageError{ctx, "seed"}
		}
		if err := phrase.PasteBulk(strings.Join(words, " "), 0); err != nil {
			return userError{err}
		}
	}

	if ctx.Bool("check") {
		if payload, err := phrase.Encode(); err == nil && !bip39.IsMnemonicValid(payload) {
			fmt.Fprintln(
				ctx.App.Writer,
				"Warning: this is not a valid BIP-39 mnemonic (wrong words or "+
					"checksum). It will be encoded anyway.",
			)
		}
	}

	return printQR(ctx, phrase)
}
