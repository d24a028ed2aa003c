// Package recovery は外部の検索サービスを使ったシードの復元を行います
package recovery

import (
	"context"
	"fmt"

	"github.com/shiroemons/go-mtclone/internal/interfaces"
	"github.com/shiroemons/go-mtclone/internal/models"
	"github.com/shiroemons/go-mtclone/pkg/mtrand"
	"github.com/shiroemons/go-mtclone/pkg/rainbow"
)

// Recoverer はテーブル検索と総当たり検索を順に試してシードを復元します
type Recoverer struct {
	searcher interfaces.SeedSearcher
	logger   interfaces.Logger
}

// NewRecoverer は新しいRecovererを作成します
func NewRecoverer(searcher interfaces.SeedSearcher, logger interfaces.Logger) *Recoverer {
	return &Recoverer{
		searcher: searcher,
		logger:   logger,
	}
}

// Recover はハッシュ値からシードを復元します。
// テーブルがあればまずテーブルを検索し、見つからずハッシュ関数名があれば総当たりします。
// 見つからない場合はエラーではなく Found が false の結果を返します。
// エラーを返すのはコンテキストがキャンセルされた場合だけです。
func (r *Recoverer) Recover(ctx context.Context, target models.Target) (models.Recovered, error) {
	select {
	case <-ctx.Done():
		return models.Recovered{}, ctx.Err()
	default:
	}

	if len(target.Digest) == 0 {
		r.logger.Warnf("ハッシュ値が空のため検索しません")
		return models.Recovered{}, nil
	}

	if len(target.Tables) > 0 {
		r.logCoverage(target.Tables)
		rec, err := r.search(ctx, models.SearchQuery{
			Mode:   models.TableLookup,
			Digest: target.Digest,
			Tables: target.Tables,
		})
		if err != nil || rec.Found {
			return rec, err
		}
		r.logger.Infof("テーブルからシードは見つかりませんでした")
	}

	if target.HashFunc != "" {
		r.logger.Infof("%s で 2^32 のシード空間を総当たりします", target.HashFunc)
		rec, err := r.search(ctx, models.SearchQuery{
			Mode:     models.Exhaustive,
			Digest:   target.Digest,
			HashFunc: target.HashFunc,
		})
		if err != nil || rec.Found {
			return rec, err
		}
		r.logger.Infof("総当たりでもシードは見つかりませんでした")
	}

	return models.Recovered{}, nil
}

// search は検索サービスを呼び出します。コンテキスト以外のエラーは未発見として扱います。
func (r *Recoverer) search(ctx context.Context, query models.SearchQuery) (models.Recovered, error) {
	rec, err := r.searcher.Search(ctx, query)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.Recovered{}, ctxErr
		}
		r.logger.Warnf("%s 検索に失敗しました: %v", query.Mode, err)
		return models.Recovered{}, nil
	}
	if !rec.Found {
		return models.Recovered{}, nil
	}
	if rec.State != nil && len(rec.State) != mtrand.StateSize {
		r.logger.Warnf("%s 検索が返した状態ベクトルが %d ワードのため無視します", query.Mode, len(rec.State))
		return models.Recovered{}, nil
	}

	if rec.State != nil {
		r.logger.Infof("%s 検索で状態ベクトルを復元しました", query.Mode)
	} else {
		r.logger.Infof("%s 検索でシードを復元しました: %d", query.Mode, rec.Seed)
	}
	return rec, nil
}

// logCoverage はファイル名から読み取れるテーブルの成功確率を記録します
func (r *Recoverer) logCoverage(paths []string) {
	var tables []rainbow.Table
	for _, path := range paths {
		table, err := rainbow.ParseTableName(path)
		if err != nil {
			r.logger.Debugf("成功確率の見積もりから除外します: %v", err)
			continue
		}
		tables = append(tables, table)
	}
	if len(tables) == 0 {
		return
	}

	p := rainbow.CombinedProbability(tables, rainbow.DefaultKeyspace)
	r.logger.Infof("%d 個のテーブルで見つかる確率は %.4f です", len(tables), p)
}

// NewGenerator は復元結果から生成器を作成します。
// 何も復元できていない場合は既定のシードで代用せず ErrNotRecovered を返します。
func NewGenerator(rec models.Recovered, variant mtrand.Variant) (*mtrand.Generator, error) {
	if !rec.Found {
		return nil, ErrNotRecovered
	}

	if rec.State != nil {
		g, err := mtrand.NewFromState(variant, rec.State)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotRecovered, err)
		}
		return g, nil
	}

	return mtrand.NewSeeded(variant, rec.Seed), nil
}
