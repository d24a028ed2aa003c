package recovery

import "errors"

var (
	// ErrNotRecovered はシードも状態も復元できなかった場合のエラー
	ErrNotRecovered = errors.New("シードを復元できなかったため生成器を作成できません")

	// ErrNoHashFunc は総当たり検索にハッシュ関数名が指定されていない場合のエラー
	ErrNoHashFunc = errors.New("総当たり検索にはハッシュ関数名が必要です")

	// ErrUnknownMode は不明な検索モードが指定された場合のエラー
	ErrUnknownMode = errors.New("不明な検索モードです")

	// ErrNoValidTable は有効なテーブルが1つもない場合のエラー
	ErrNoValidTable = errors.New("有効なテーブルがありません")
)
