package mtrand

import "errors"

var (
	// ErrStateLength は状態ベクトルの長さが 624 でない場合のエラー
	ErrStateLength = errors.New("状態ベクトルは624ワードである必要があります")

	// ErrTooFewOutputs は状態の復元に必要な出力が足りない場合のエラー
	ErrTooFewOutputs = errors.New("状態の復元には624個以上の連続した出力が必要です")

	// ErrUnknownVariant は不明なツイスト種別が指定された場合のエラー
	ErrUnknownVariant = errors.New("不明なツイスト種別です")
)
