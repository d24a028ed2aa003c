package recovery

import (
	"context"
	"encoding/hex"
	"errors"
	"os/exec"

	apperrors "github.com/shiroemons/go-mtclone/internal/errors"
	"github.com/shiroemons/go-mtclone/internal/interfaces"
	"github.com/shiroemons/go-mtclone/internal/models"
	"github.com/shiroemons/go-mtclone/internal/parser"
	"github.com/shiroemons/go-mtclone/pkg/rainbow"
)

// CommandRunner は外部コマンドを実行して標準出力と標準エラー出力を返します
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// ExecSearcher は snowflake 互換の検索ツールを呼び出す SeedSearcher の実装です。
//
//	<tool> search <table> <hex digest>
//	<tool> crack <hash func> <hex digest>
type ExecSearcher struct {
	path   string
	run    CommandRunner
	logger interfaces.Logger
}

// NewExecSearcher は新しいExecSearcherを作成します
func NewExecSearcher(path string, logger interfaces.Logger) *ExecSearcher {
	return NewExecSearcherWithRunner(path, runCommand, logger)
}

// NewExecSearcherWithRunner はコマンドの実行方法を指定してExecSearcherを作成します
func NewExecSearcherWithRunner(path string, run CommandRunner, logger interfaces.Logger) *ExecSearcher {
	return &ExecSearcher{
		path:   path,
		run:    run,
		logger: logger,
	}
}

// Search は問い合わせの種類に応じて検索ツールを実行します
func (s *ExecSearcher) Search(ctx context.Context, query models.SearchQuery) (models.Recovered, error) {
	digest := hex.EncodeToString(query.Digest)

	switch query.Mode {
	case models.TableLookup:
		return s.searchTables(ctx, query.Tables, digest)
	case models.Exhaustive:
		if query.HashFunc == "" {
			return models.Recovered{}, apperrors.NewSearchError("crack", "", ErrNoHashFunc)
		}
		return s.runOne(ctx, "crack", query.HashFunc, digest)
	default:
		return models.Recovered{}, ErrUnknownMode
	}
}

// searchTables はテーブルを順に検索し、最初に見つかったシードを返します
func (s *ExecSearcher) searchTables(ctx context.Context, tables []string, digest string) (models.Recovered, error) {
	var errs []error
	searched := 0

	for _, table := range tables {
		select {
		case <-ctx.Done():
			return models.Recovered{}, ctx.Err()
		default:
		}

		if _, err := rainbow.ParseTableName(table); err != nil {
			s.logger.Warnf("テーブル %s をスキップします: %v", table, err)
			continue
		}

		searched++
		s.logger.Debugf("テーブル %s を検索しています", table)
		rec, err := s.runOne(ctx, "search", table, digest)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return models.Recovered{}, ctxErr
			}
			errs = append(errs, err)
			continue
		}
		if rec.Found {
			return rec, nil
		}
	}

	if searched == 0 {
		return models.Recovered{}, ErrNoValidTable
	}
	return models.Recovered{}, errors.Join(errs...)
}

// runOne は検索ツールを1回実行して出力を解釈します
func (s *ExecSearcher) runOne(ctx context.Context, op, target, digest string) (models.Recovered, error) {
	out, runErr := s.run(ctx, s.path, op, target, digest)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return models.Recovered{}, ctxErr
	}

	// 見つからない場合に非ゼロで終了するツールもあるため、まず出力を解釈します
	seed, found, err := parser.ParseSearchOutput(string(out))
	if err != nil {
		if runErr != nil && errors.Is(err, parser.ErrUnknownSearchOutput) {
			return models.Recovered{}, apperrors.NewSearchError(op, target, runErr)
		}
		return models.Recovered{}, apperrors.NewSearchError(op, target, err)
	}

	return models.Recovered{Found: found, Seed: seed}, nil
}
