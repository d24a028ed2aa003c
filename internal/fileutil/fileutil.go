// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	apperrors "github.com/shiroemons/go-mtclone/internal/errors"
	"github.com/shiroemons/go-mtclone/internal/interfaces"
)

// DecodeText はBOMを取り除いてUTF-8の文字列に変換します。
// UTF-16のBOMがあればUTF-16としてデコードします。
func DecodeText(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	text, _, err := transform.String(decoder, string(data))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeText, err)
	}
	return text, nil
}

// ReadText はファイルを読み込んでテキストとして返します
func ReadText(fs interfaces.FileSystem, path string) (string, error) {
	if !fs.FileExists(path) {
		return "", fmt.Errorf("%w: %s", apperrors.ErrFileNotFound, path)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadFile, err)
	}

	return DecodeText(data)
}

// SaveOutput は内容をファイルに保存します。出力先ディレクトリがなければ作成します。
func SaveOutput(fs interfaces.FileSystem, outputPath string, content string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
		}
	}

	if err := fs.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}

	return nil
}

// FormatValues は値を1行に1つずつ並べた文字列にします
func FormatValues(values []int64) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(strconv.FormatInt(v, 10))
		b.WriteByte('\n')
	}
	return b.String()
}
