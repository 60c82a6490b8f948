package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/tdex-network/btcqr/internal/core/application"
	"github.com/tdex-network/btcqr/internal/core/ports"
	"github.com/urfave/cli/v2"
)

const (
	stateFile = "state.json"

	widthKey      = "width"
	marginKey     = "margin"
	foregroundKey = "foreground"
	backgroundKey = "background"
	outDirKey     = "out_dir"
	wordlistKey   = "wordlist"
)

var stateValidators = map[string]func(string) error{
	widthKey: func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("width must be a positive number of pixels")
		}
		return nil
	},
	marginKey: func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("margin must be a non negative number of modules")
		}
		return nil
	},
	foregroundKey: func(v string) error {
		_, err := ports.ParseRGB(v)
		return err
	},
	backgroundKey: func(v string) error {
		_, err := ports.ParseRGB(v)
		return err
	},
	outDirKey: func(v string) error {
		if v == "" {
			return fmt.Errorf("output dir must not be empty")
		}
		return nil
	},
	wordlistKey: func(v string) error {
		if v == "" {
			return nil
		}
		if _, err := os.Stat(v); err != nil {
			return fmt.Errorf("word list: %s", err)
		}
		return nil
	},
}

func defaultState(datadir string) map[string]string {
	return map[string]string{
		widthKey:      strconv.Itoa(application.DefaultWidthPx),
		marginKey:     strconv.Itoa(application.DefaultMarginModules),
		foregroundKey: application.DefaultForeground.String(),
		backgroundKey: application.DefaultBackground.String(),
		outDirKey:     datadir,
		wordlistKey:   "",
	}
}

func statePath(ctx *cli.Context) string {
	return filepath.Join(ctx.String("datadir"), stateFile)
}

// getState returns the stored state merged over the defaults. A missing
// state file is not an error.
func getState(ctx *cli.Context) (map[string]string, error) {
	data := map[string]string{}

	file, err := os.ReadFile(statePath(ctx))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("get config state error: %w", err)
	}
	if len(file) > 0 {
		if err := json.Unmarshal(file, &data); err != nil {
			return nil, fmt.Errorf("get config state error: %w", err)
		}
	}

	return merge(defaultState(ctx.String("datadir")), data), nil
}

func setState(ctx *cli.Context, data map[string]string) error {
	for key, value := range data {
		validate, ok := stateValidators[key]
		if !ok {
			return fmt.Errorf("unknown config key %q, must be one of %v", key, stateKeys())
		}
		if err := validate(value); err != nil {
			return err
		}
	}

	datadir := ctx.String("datadir")
	if _, err := os.Stat(datadir); os.IsNotExist(err) {
		if err := os.MkdirAll(datadir, os.ModeDir|0700); err != nil {
			return err
		}
	}

	currentData, err := getState(ctx)
	if err != nil {
		return err
	}

	mergedData := merge(currentData, data)

	jsonString, err := json.Marshal(mergedData)
	if err != nil {
		return err
	}
	if err := os.WriteFile(statePath(ctx), jsonString, 0600); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	return nil
}

func stateKeys() []string {
	keys := make([]string, 0, len(stateValidators))
	for k := range stateValidators {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func merge(maps ...map[string]string) map[string]string {
	merge := make(map[string]string, 0)
	for _, m := range maps {
		for k, v := range m {
			merge[k] = v
		}
	}
	return merge
}
