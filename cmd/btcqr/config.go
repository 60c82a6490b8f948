package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

var (
	widthFlag = cli.IntFlag{
		Name:  "width",
		Usage: "side of the generated png images in pixels",
		Value: 400,
	}
	marginFlag = cli.IntFlag{
		Name:  "margin",
		Usage: "quiet zone around the qr code, in modules",
		Value: 2,
	}
	foregroundFlag = cli.StringFlag{
		Name:  "foreground",
		Usage: "color of dark modules in #rrggbb format",
		Value: "#1e1e1e",
	}
	backgroundFlag = cli.StringFlag{
		Name:  "background",
		Usage: "color of light modules in #rrggbb format",
		Value: "#ffffff",
	}
	outDirFlag = cli.StringFlag{
		Name:  "out-dir",
		Usage: "directory where png images are written, defaults to the datadir",
	}
	wordlistFlag = cli.StringFlag{
		Name:  "wordlist",
		Usage: "optional file with a custom 2048 words list used for autocompletion",
	}
)

var config = cli.Command{
	Name:   "config",
	Usage:  "Print local configuration of the btcqr CLI",
	Action: configAction,
	Subcommands: []*cli.Command{
		{
			Name:   "set",
			Usage:  "set a <key> <value> in the local state",
			Action: configSetAction,
		},
		{
			Name:   "init",
			Usage:  "initialize the local state with flags",
			Action: configInitAction,
			Flags: []cli.Flag{
				&widthFlag,
				&marginFlag,
				&foregroundFlag,
				&backgroundFlag,
				&outDirFlag,
				&wordlistFlag,
			},
		},
	},
}

func configAction(ctx *cli.Context) error {
	state, err := getState(ctx)
	if err != nil {
		return err
	}

	for _, key := range stateKeys() {
		fmt.Fprintln(ctx.App.Writer, key+": "+state[key])
	}

	return nil
}

func configInitAction(ctx *cli.Context) error {
	outDir := ctx.String("out-dir")
	if outDir == "" {
		outDir = ctx.String("datadir")
	}

	return setState(ctx, map[string]string{
		widthKey:      fmt.Sprint(ctx.Int("width")),
		marginKey:     fmt.Sprint(ctx.Int("margin")),
		foregroundKey: ctx.String("foreground"),
		backgroundKey: ctx.String("background"),
		outDirKey:     outDir,
		wordlistKey:   ctx.String("wordlist"),
	})
}

func configSetAction(ctx *cli.Context) error {
	if ctx.NArg() < 2 {
		return errors.New("key and value are missing")
	}

	key := ctx.Args().Get(0)
	value := ctx.Args().Get(1)

	if err := setState(ctx, map[string]string{key: value}); err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "%s %s has been set\n", key, value)

	return nil
}
