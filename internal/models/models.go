// Package models はmtcloneコマンドで使用するデータモデルを定義します
package models

// SearchMode は検索の種類を表します
type SearchMode int

const (
	// TableLookup はレインボーテーブルの検索です
	TableLookup SearchMode = iota
	// Exhaustive は 2^32 のシード空間全体の総当たりです
	Exhaustive
)

// String は検索モードの名前を返します
func (m SearchMode) String() string {
	switch m {
	case TableLookup:
		return "table"
	case Exhaustive:
		return "exhaustive"
	default:
		return "unknown"
	}
}

// SearchQuery は外部の検索サービスへの問い合わせです
type SearchQuery struct {
	Mode     SearchMode
	Digest   []byte   // 目的のハッシュ値
	Tables   []string // TableLookup で使うテーブル
	HashFunc string   // Exhaustive で使うハッシュ関数名
}

// Recovered は検索結果を表します。Found が false の場合は何も見つかっていません。
type Recovered struct {
	Found bool
	Seed  uint32
	State []uint32 // 状態ベクトル全体が復元された場合のみ設定されます
}

// Target は復元対象を表します
type Target struct {
	Digest   []byte
	Tables   []string
	HashFunc string
}
