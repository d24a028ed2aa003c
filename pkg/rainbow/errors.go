package rainbow

import "errors"

// ErrTableName はテーブルファイル名が規約に沿っていない場合のエラー
var ErrTableName = errors.New("テーブル名は <hash>.<chainNum>.<chainLen>.<index>.rt の形式である必要があります")
