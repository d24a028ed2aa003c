package rainbow

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Table はテーブルファイル名から読み取れる情報です
type Table struct {
	HashFunc string
	ChainNum uint32
	ChainLen uint32
	Index    uint32
}

// TableName は <hash>.<chainNum>.<chainLen>.<index>.rt 形式のファイル名を返します
func TableName(hashFunc string, chainNum, chainLen, index uint32) string {
	return fmt.Sprintf("%s.%d.%d.%d.rt", hashFunc, chainNum, chainLen, index)
}

// String はテーブルのファイル名を返します
func (t Table) String() string {
	return TableName(t.HashFunc, t.ChainNum, t.ChainLen, t.Index)
}

// ParseTableName はテーブルのパスからパラメータを取り出します。ディレクトリ部分は無視します。
func ParseTableName(path string) (Table, error) {
	base := filepath.Base(path)

	name, ok := strings.CutSuffix(base, ".rt")
	if !ok {
		return Table{}, fmt.Errorf("%w: %s", ErrTableName, base)
	}

	// ハッシュ名は最初のドットまで
	hashFunc, rest, ok := strings.Cut(name, ".")
	if !ok || hashFunc == "" {
		return Table{}, fmt.Errorf("%w: %s", ErrTableName, base)
	}

	fields := strings.Split(rest, ".")
	if len(fields) != 3 {
		return Table{}, fmt.Errorf("%w: %s", ErrTableName, base)
	}

	var nums [3]uint32
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return Table{}, fmt.Errorf("%w: %s: %w", ErrTableName, base, err)
		}
		nums[i] = uint32(n)
	}

	return Table{
		HashFunc: hashFunc,
		ChainNum: nums[0],
		ChainLen: nums[1],
		Index:    nums[2],
	}, nil
}

// CombinedProbability はテーブル群全体での成功確率を返します。
// 各テーブルは独立とみなして失敗確率を掛け合わせます。
func CombinedProbability(tables []Table, keyspace float64) float64 {
	miss := 1.0
	for _, t := range tables {
		miss *= 1 - SuccessProbability(float64(t.ChainNum), t.ChainLen, 1, keyspace)
	}
	return 1 - miss
}
