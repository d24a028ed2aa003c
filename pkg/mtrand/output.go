package mtrand

import "math/bits"

// Next は全範囲の出力を返します。
//
// bounds に min と max の両方が渡された場合のみ [min, max] に写像します。
// 片方だけ渡した場合は範囲指定なしとして扱われます (互換性のための挙動です)。
// min > max の場合の結果は実装依存で、エラーにはなりません。
func (g *Generator) Next(bounds ...int64) int64 {
	raw := g.Uint32()
	if len(bounds) < 2 {
		return int64(raw)
	}
	return MapFullRange(raw, bounds[0], bounds[1])
}

// NextHalfRange は下位 1 ビットを捨てた 31 ビットの出力を返します。
// PHP の mt_rand() が呼び出し側に見せる値と同じです。
// bounds の扱いは Next と同じですが、写像の除数は 2^31 です。
func (g *Generator) NextHalfRange(bounds ...int64) int64 {
	raw := g.Uint32() >> 1
	if len(bounds) < 2 {
		return int64(raw)
	}
	return MapHalfRange(raw, bounds[0], bounds[1])
}

// MapFullRange は 32 ビットの値を min + floor(raw * (max-min+1) / 2^32) に写像します
func MapFullRange(raw uint32, min, max int64) int64 {
	return min + scale(uint64(raw), min, max, 32)
}

// MapHalfRange は 31 ビットの値を min + floor(raw * (max-min+1) / 2^31) に写像します
func MapHalfRange(raw uint32, min, max int64) int64 {
	return min + scale(uint64(raw), min, max, 31)
}

// scale は floor(raw * span / 2^shift) を 128 ビットの積で計算します。
// int64 全域では span が 2^64 で 0 に折り返すため、raw * 2^(64-shift) を返します。
func scale(raw uint64, min, max int64, shift uint) int64 {
	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		return int64(raw << (64 - shift))
	}
	hi, lo := bits.Mul64(raw, span)
	return int64(hi<<(64-shift) | lo>>shift)
}
