package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/shiroemons/go-mtclone/internal/app"
	"github.com/shiroemons/go-mtclone/internal/config"
)

func main() {
	cfg, args, err := config.ParseProbArgs(os.Args[1:], os.Stdout)
	if errors.Is(err, config.ErrHelpShown) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}

	if config.HandleVersion(os.Stdout, "rtprob", cfg.ShowVersion) {
		return
	}

	if err := app.RunProbability(os.Stdout, args, cfg.DebugMode); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}
}
