// Package interfaces はmtcloneコマンドで使用するインターフェースを定義します
package interfaces

import (
	"context"

	"github.com/shiroemons/go-mtclone/internal/models"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
}

// SeedSearcher は外部の検索サービスのインターフェースです。
// 見つからない場合はエラーではなく Found が false の結果を返します。
type SeedSearcher interface {
	Search(ctx context.Context, query models.SearchQuery) (models.Recovered, error)
}

// Logger はログ出力のインターフェース
type Logger interface {
	Debugf(format string, params ...any)
	Infof(format string, params ...any)
	Warnf(format string, params ...any)
	Errorf(format string, params ...any)
}
