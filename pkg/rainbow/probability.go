// Package rainbow はレインボーテーブルの成功確率の見積もりと、
// テーブルファイル名の規約を扱います。テーブルの生成や検索は行いません。
package rainbow

import "math"

// DefaultKeyspace は 32 ビットシード空間の大きさです
const DefaultKeyspace = float64(1 << 32)

// Params は成功確率の計算に使うテーブルのパラメータです
type Params struct {
	ChainCount float64
	ChainLen   uint32
	TableCount uint32
	Keyspace   float64
}

// Probability はパラメータから成功確率を計算します
func (p Params) Probability() float64 {
	return SuccessProbability(p.ChainCount, p.ChainLen, p.TableCount, p.Keyspace)
}

// SuccessProbability は tableCount 枚のテーブルで目的のシードが見つかる確率を返します。
//
//	m[0] = chainCount
//	m[i+1] = N * (1 - exp(-m[i]/N))
//	p = Π (1 - m[i]/N)  (i = 0 .. chainLen-1)
//	結果 = 1 - p^tableCount
func SuccessProbability(chainCount float64, chainLen, tableCount uint32, keyspace float64) float64 {
	mi := chainCount
	p := 1.0
	for i := uint32(0); i < chainLen; i++ {
		p *= 1 - mi/keyspace
		mi = keyspace * (1 - math.Exp(-mi/keyspace))
	}
	return 1 - math.Pow(p, float64(tableCount))
}
