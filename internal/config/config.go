// Package config はmtcloneとrtprobコマンドの設定管理を行います
package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/decred/slog"
	"github.com/jessevdk/go-flags"
)

const Version = "0.1.0"

// ErrHelpShown はヘルプを表示した場合に返されます
var ErrHelpShown = errors.New("ヘルプを表示しました")

// ErrInvalidCount は出力数が負の場合のエラー
var ErrInvalidCount = errors.New("出力数は0以上である必要があります")

// Config はmtcloneの設定を保持します
type Config struct {
	Seed      string   `short:"s" long:"seed" description:"seed value (decimal or 0x hex)"`
	StateFile string   `short:"S" long:"state" description:"path to a file containing the 624-word state vector"`
	Observed  string   `long:"observed" description:"path to a file containing at least 624 observed full-range outputs"`
	Digest    string   `long:"digest" description:"hex digest of the first output to recover the seed from"`
	Tables    []string `short:"t" long:"table" description:"rainbow table file to search (may be repeated)"`
	HashFunc  string   `long:"hash" description:"hash function name for the exhaustive search"`
	Searcher  string   `long:"searcher" default:"snowflake" description:"path to the seed search tool"`

	Variant string `long:"variant" choice:"php" choice:"defective" choice:"standard" choice:"mt" default:"php" description:"generator variant"`
	Mode    string `short:"m" long:"mode" choice:"full" choice:"half" default:"half" description:"output mapping"`
	Count   int    `short:"n" long:"count" default:"10" description:"number of outputs to generate"`
	Skip    uint64 `long:"skip" description:"number of outputs to discard first"`
	Min     *int64 `long:"min" description:"lower bound of the output range"`
	Max     *int64 `long:"max" description:"upper bound of the output range"`

	Output  string        `short:"o" long:"output" description:"write outputs to this file instead of stdout"`
	Timeout time.Duration `long:"timeout" description:"abort the seed search after this duration (0 disables)"`

	DebugMode   bool `short:"d" long:"debug" description:"enable debug output"`
	ShowVersion bool `short:"v" long:"version" description:"show version information"`
}

// Ranged は出力範囲の上下限がどちらも指定されているかを返します
func (c *Config) Ranged() bool {
	return c.Min != nil && c.Max != nil
}

// ParseFlags はコマンドライン引数を解析して設定を返します。
// --help が指定された場合はヘルプを w に書き出して ErrHelpShown を返します。
func ParseFlags(args []string, w io.Writer) (*Config, error) {
	cfg := &Config{}

	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "mtclone"
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, handleParseError(parser, err, w)
	}

	if cfg.Count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, cfg.Count)
	}

	return cfg, nil
}

// ProbConfig はrtprobの設定を保持します
type ProbConfig struct {
	DebugMode   bool `short:"d" long:"debug" description:"print a detailed report"`
	ShowVersion bool `short:"v" long:"version" description:"show version information"`
}

// ParseProbArgs はrtprobの引数を解析し、フラグ以外の引数を返します
func ParseProbArgs(args []string, w io.Writer) (*ProbConfig, []string, error) {
	cfg := &ProbConfig{}

	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "rtprob"
	parser.Usage = "[OPTIONS] <chain num> <chain len> <table num> [keyspace]"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, handleParseError(parser, err, w)
	}

	return cfg, rest, nil
}

func handleParseError(parser *flags.Parser, err error, w io.Writer) error {
	var e *flags.Error
	if errors.As(err, &e) && e.Type == flags.ErrHelp {
		parser.WriteHelp(w)
		return ErrHelpShown
	}
	return err
}

// HandleVersion はバージョン表示を処理します。表示した場合は true を返します。
func HandleVersion(w io.Writer, name string, showVersion bool) bool {
	if !showVersion {
		return false
	}
	fmt.Fprintf(w, "%s version %s\n", name, Version)
	return true
}

// NewLogger は w に出力するロガーを作成します。
// デバッグモードでない場合はデバッグ出力を抑制します。
func NewLogger(debug bool, w io.Writer) slog.Logger {
	logger := slog.NewBackend(w).Logger("MTCL")
	if debug {
		logger.SetLevel(slog.LevelDebug)
	} else {
		logger.SetLevel(slog.LevelInfo)
	}
	return logger
}
