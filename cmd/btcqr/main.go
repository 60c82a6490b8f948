package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/btcqr/internal/core/application"
	"github.com/urfave/cli/v2"
)

var (
	defaultDatadir = btcutil.AppDataDir("btcqr-cli", false)

	datadirFlag = cli.StringFlag{
		Name:  "datadir",
		Usage: "directory where the CLI keeps its state",
		Value: defaultDatadir,
	}
	debugFlag = cli.BoolFlag{
		Name:  "debug",
		Usage: "enable debug logs",
	}
)

func main() {
	app := newApp(os.Stdout)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "btcqr"
	app.Usage = "Encode bitcoin seed phrases, descriptors and transactions as QR codes"
	app.Writer = w
	app.Flags = []cli.Flag{&datadirFlag, &debugFlag}
	app.Before = func(ctx *cli.Context) error {
		log.SetLevel(log.WarnLevel)
		if ctx.Bool("debug") {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}
	app.Commands = append(
		app.Commands,
		&config,
		&seed,
		&descriptor,
		&tx,
		&suggest,
		&classify,
	)

	return app
}

// userError carries a service error together with the message meant to be
// printed for it.
type userError struct {
	err error
}

func (e userError) Error() string {
	return application.UserMessage(e.err)
}

func (e userError) Unwrap() error {
	return e.err
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[btcqr] %v\n", err)
	}
	os.Exit(1)
}
