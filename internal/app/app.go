// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shiroemons/go-mtclone/internal/config"
	apperrors "github.com/shiroemons/go-mtclone/internal/errors"
	"github.com/shiroemons/go-mtclone/internal/fileutil"
	"github.com/shiroemons/go-mtclone/internal/interfaces"
	"github.com/shiroemons/go-mtclone/internal/models"
	"github.com/shiroemons/go-mtclone/internal/parser"
	"github.com/shiroemons/go-mtclone/internal/recovery"
	"github.com/shiroemons/go-mtclone/pkg/mtrand"
)

// App はmtcloneのメインロジックを管理します
type App struct {
	config    *config.Config
	logger    interfaces.Logger
	fs        interfaces.FileSystem
	recoverer *recovery.Recoverer
	stdout    io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Searcher   interfaces.SeedSearcher
	Logger     interfaces.Logger
	Stdout     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	var logger interfaces.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		logger = config.NewLogger(cfg.DebugMode, os.Stderr)
	}

	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	// デフォルトは外部の検索ツール
	var searcher interfaces.SeedSearcher
	if opts.Searcher != nil {
		searcher = opts.Searcher
	} else {
		searcher = recovery.NewExecSearcher(cfg.Searcher, logger)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &App{
		config:    cfg,
		logger:    logger,
		fs:        fs,
		recoverer: recovery.NewRecoverer(searcher, logger),
		stdout:    stdout,
	}
}

// Run はアプリケーションを実行します
func (a *App) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	variant, err := mtrand.ParseVariant(a.config.Variant)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	g, err := a.buildGenerator(ctx, variant)
	if err != nil {
		return err
	}

	values := a.generate(g)
	output := fileutil.FormatValues(values)

	if a.config.Output != "" {
		if err := fileutil.SaveOutput(a.fs, a.config.Output, output); err != nil {
			return fmt.Errorf("%w: %w", ErrSaveFile, err)
		}
		a.logger.Infof("%d 個の値を %s に保存しました", len(values), a.config.Output)
		return nil
	}

	_, err = io.WriteString(a.stdout, output)
	return err
}

// buildGenerator は --seed、--state、--observed、--digest の優先順で生成器を作成します
func (a *App) buildGenerator(ctx context.Context, variant mtrand.Variant) (*mtrand.Generator, error) {
	switch {
	case a.config.Seed != "":
		seed, err := parser.ParseSeed(a.config.Seed)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		a.logger.Debugf("シード %d (%s) で初期化します", seed, variant)
		return mtrand.NewSeeded(variant, seed), nil

	case a.config.StateFile != "":
		words, err := a.readWords(a.config.StateFile, parser.ParseStateVector)
		if err != nil {
			return nil, err
		}
		a.logger.Debugf("%s から状態ベクトルを読み込みました", a.config.StateFile)
		return mtrand.NewFromState(variant, words)

	case a.config.Observed != "":
		words, err := a.readWords(a.config.Observed, parser.ParseWords)
		if err != nil {
			return nil, err
		}
		g, err := mtrand.Clone(variant, words)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCloneFailed, err)
		}
		a.logger.Debugf("%d 個の観測値から状態を復元しました", len(words))
		return g, nil

	case a.config.Digest != "":
		return a.recoverGenerator(ctx, variant)

	default:
		return nil, ErrNoSource
	}
}

// readWords はファイルを読み込んで parse で解析します
func (a *App) readWords(path string, parse func(string) ([]uint32, error)) ([]uint32, error) {
	text, err := fileutil.ReadText(a.fs, path)
	if err != nil {
		return nil, err
	}
	words, err := parse(text)
	if err != nil {
		return nil, apperrors.NewParseError(path, err)
	}
	return words, nil
}

// recoverGenerator は検索ツールでシードを復元して生成器を作成します
func (a *App) recoverGenerator(ctx context.Context, variant mtrand.Variant) (*mtrand.Generator, error) {
	digest, err := parser.ParseDigest(a.config.Digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(a.config.Tables) == 0 && a.config.HashFunc == "" {
		return nil, ErrNoSearchTarget
	}

	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	rec, err := a.recoverer.Recover(ctx, models.Target{
		Digest:   digest,
		Tables:   a.config.Tables,
		HashFunc: a.config.HashFunc,
	})
	if err != nil {
		return nil, err
	}

	return recovery.NewGenerator(rec, variant)
}

// generate は --skip 個を読み捨ててから --count 個の値を生成します
func (a *App) generate(g *mtrand.Generator) []int64 {
	for i := uint64(0); i < a.config.Skip; i++ {
		g.Uint32()
	}

	var bounds []int64
	switch {
	case a.config.Ranged():
		bounds = []int64{*a.config.Min, *a.config.Max}
	case a.config.Min != nil || a.config.Max != nil:
		a.logger.Warnf("--min と --max の片方だけが指定されたため範囲を指定せずに出力します")
	}

	next := g.NextHalfRange
	if a.config.Mode == "full" {
		next = g.Next
	}

	values := make([]int64, a.config.Count)
	for i := range values {
		values[i] = next(bounds...)
	}
	return values
}
