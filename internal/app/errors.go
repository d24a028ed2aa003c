package app

import "errors"

var (
	// ErrNoSource は生成器の元になる入力が指定されていない場合のエラー
	ErrNoSource = errors.New("--seed、--state、--observed、--digest のいずれかを指定してください")

	// ErrNoSearchTarget はハッシュ値に対する検索方法が指定されていない場合のエラー
	ErrNoSearchTarget = errors.New("--digest には --table または --hash が必要です")

	// ErrInvalidConfig は設定値が不正な場合のエラー
	ErrInvalidConfig = errors.New("設定が不正です")

	// ErrCloneFailed は観測値からの状態の復元に失敗した場合のエラー
	ErrCloneFailed = errors.New("観測値から状態を復元できませんでした")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")
)
