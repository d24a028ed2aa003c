// Package errors はカスタムエラータイプを提供します
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrFileNotFound はファイルが見つからない場合のエラー
	ErrFileNotFound = errors.New("ファイルが見つかりません")

	// ErrSearchFailed は検索ツールがエラーを報告した場合のエラー
	ErrSearchFailed = errors.New("シードの検索に失敗しました")
)

// SearchError は検索関連のエラー
type SearchError struct {
	Op     string // 実行していた操作
	Target string // テーブル名またはハッシュ関数名
	Err    error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *SearchError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *SearchError) Unwrap() error {
	return e.Err
}

// NewSearchError は新しいSearchErrorを作成します
func NewSearchError(op, target string, err error) *SearchError {
	return &SearchError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

// ParseError は解析関連のエラー
type ParseError struct {
	File string // ファイル名
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *ParseError) Error() string {
	return fmt.Sprintf("%sの解析エラー: %v", e.File, e.Err)
}

// Unwrap は元のエラーを返します
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError は新しいParseErrorを作成します
func NewParseError(file string, err error) *ParseError {
	return &ParseError{
		File: file,
		Err:  err,
	}
}
