package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tdex-network/btcqr/internal/core/application"
	"github.com/tdex-network/btcqr/internal/core/domain"
	"github.com/tdex-network/btcqr/internal/core/ports"
	"github.com/tdex-network/btcqr/internal/infrastructure/exporter"
	"github.com/tdex-network/btcqr/internal/infrastructure/qrcode"
	"github.com/tdex-network/btcqr/internal/infrastructure/qrterminal"
	"github.com/tdex-network/btcqr/internal/infrastructure/vocabulary"
	"github.com/urfave/cli/v2"
)

const (
	outputQR      = "qr"
	outputImage   = "image"
	outputPayload = "payload"
)

var (
	outputs = map[string]struct{}{
		outputQR:      {},
		outputImage:   {},
		outputPayload: {},
	}

	outFlag = cli.StringFlag{
		Name: "out",
		Usage: "whether 'qr' to display the QR code in the terminal, 'image' " +
			"to write it to a png file or 'payload' to print the encoded string",
		Value: outputQR,
	}
	plainFlag = cli.BoolFlag{
		Name:  "plain",
		Usage: "draw terminal QR codes with block characters instead of ANSI colors",
	}
	exampleFlag = cli.BoolFlag{
		Name:  "example",
		Usage: "load sample data instead of reading it from args",
	}
)

func getOutput(ctx *cli.Context) (string, error) {
	out := strings.ToLower(ctx.String("out"))
	if _, ok := outputs[out]; !ok {
		return "", fmt.Errorf(
			"invalid output %q, must be one of qr, image, payload", out,
		)
	}
	return out, nil
}

func getQRService(
	ctx *cli.Context, out string,
) (application.QRService, error) {
	state, err := getState(ctx)
	if err != nil {
		return nil, err
	}

	vocab := vocabulary.NewEnglish()
	if path := state[wordlistKey]; path != "" {
		if vocab, err = vocabulary.NewFromFile(path); err != nil {
			return nil, err
		}
	}

	width, err := strconv.Atoi(state[widthKey])
	if err != nil {
		return nil, fmt.Errorf("invalid width in config state: %s", err)
	}
	margin, err := strconv.Atoi(state[marginKey])
	if err != nil {
		return nil, fmt.Errorf("invalid margin in config state: %s", err)
	}
	fg, err := ports.ParseRGB(state[foregroundKey])
	if err != nil {
		return nil, err
	}
	bg, err := ports.ParseRGB(state[backgroundKey])
	if err != nil {
		return nil, err
	}

	var renderer ports.Renderer = qrcode.NewService()
	var exp ports.Exporter
	switch out {
	case outputQR:
		renderer = qrterminal.NewService()
		if ctx.Bool("plain") {
			renderer = qrterminal.NewPlainService()
		}
	case outputImage:
		if exp, err = exporter.NewService(state[outDirKey]); err != nil {
			return nil, err
		}
	}

	cfg := &application.Config{
		Renderer:      renderer,
		Vocabulary:    vocab,
		Exporter:      exp,
		WidthPx:       width,
		MarginModules: margin,
		Foreground:    fg,
		Background:    bg,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg.QRService(), nil
}

// printQR encodes the given input according to the --out flag.
func printQR(ctx *cli.Context, enc domain.Encoder) error {
	out, err := getOutput(ctx)
	if err != nil {
		return err
	}
	w := ctx.App.Writer

	if out == outputPayload {
		if res := enc.Validate(); !res.Ok {
			return userError{res.Err}
		}
		payload, err := enc.BuildPayload()
		if err != nil {
			return userError{err}
		}
		fmt.Fprintln(w, payload)
		return nil
	}

	svc, err := getQRService(ctx, out)
	if err != nil {
		return err
	}

	artifact, err := svc.Generate(ctx.Context, enc)
	if err != nil {
		return userError{err}
	}

	if out == outputQR {
		fmt.Fprint(w, string(artifact.Image))
	} else {
		path, err := svc.Export(artifact)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "QR code written to file", path)
	}
	fmt.Fprintln(w, artifact.Hint)

	return nil
}
