package parser

import "errors"

var (
	// ErrInvalidWord は 32 ビット値として解析できない場合のエラー
	ErrInvalidWord = errors.New("32ビットの値として解析できません")

	// ErrInvalidSeed はシードが不正な場合のエラー
	ErrInvalidSeed = errors.New("シードが不正です")

	// ErrWordCount は状態ベクトルのワード数が 624 でない場合のエラー
	ErrWordCount = errors.New("状態ベクトルは624ワードである必要があります")

	// ErrInvalidDigest はハッシュ値が不正な場合のエラー
	ErrInvalidDigest = errors.New("ハッシュ値は16進数で指定してください")

	// ErrUnknownSearchOutput は検索ツールの出力を解釈できない場合のエラー
	ErrUnknownSearchOutput = errors.New("検索ツールの出力を解釈できません")

	// ErrArgumentCount は引数の数が不正な場合のエラー
	ErrArgumentCount = errors.New("引数の数が不正です")

	// ErrInvalidNumber は数値として解析できない場合のエラー
	ErrInvalidNumber = errors.New("数値として解析できません")

	// ErrScanError はスキャンエラー
	ErrScanError = errors.New("スキャンエラー")
)
