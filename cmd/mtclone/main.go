package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shiroemons/go-mtclone/internal/app"
	"github.com/shiroemons/go-mtclone/internal/config"
)

func main() {
	// コマンドライン引数の解析
	cfg, err := config.ParseFlags(os.Args[1:], os.Stdout)
	if errors.Is(err, config.ErrHelpShown) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}

	// バージョン表示の処理
	if config.HandleVersion(os.Stdout, "mtclone", cfg.ShowVersion) {
		return
	}

	// Ctrl+C で検索ツールを止められるようにする
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// アプリケーションの実行
	application := app.New(cfg)
	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		stop()
		os.Exit(1)
	}
}
