package mtrand

// Untemper はテンパリングの逆変換です
func Untemper(y uint32) uint32 {
	y = undoRightShiftXor(y, 18)
	y = undoLeftShiftXorAnd(y, 15, 0xefc60000)
	y = undoLeftShiftXorAnd(y, 7, 0x9d2c5680)
	y = undoRightShiftXor(y, 11)
	return y
}

// undoRightShiftXor は y = x ^ (x >> shift) を x について解きます
func undoRightShiftXor(y uint32, shift uint) uint32 {
	x := y
	for i := shift; i < 32; i += shift {
		x = y ^ (x >> shift)
	}
	return x
}

// undoLeftShiftXorAnd は y = x ^ ((x << shift) & mask) を x について解きます
func undoLeftShiftXorAnd(y uint32, shift uint, mask uint32) uint32 {
	x := y
	for i := shift; i < 32; i += shift {
		x = y ^ ((x << shift) & mask)
	}
	return x
}

// RecoverState は連続した全範囲出力から状態ベクトルを復元します。
// 末尾の 624 個を使うため、どの位置から観測を始めても構いません。
// 31 ビットの出力 (NextHalfRange) からは復元できません。
func RecoverState(outputs []uint32) ([StateSize]uint32, error) {
	var state [StateSize]uint32
	if len(outputs) < StateSize {
		return state, ErrTooFewOutputs
	}

	tail := outputs[len(outputs)-StateSize:]
	for i, y := range tail {
		state[i] = Untemper(y)
	}
	return state, nil
}

// Clone は観測した出力の次の値から生成を続ける Generator を返します
func Clone(variant Variant, outputs []uint32) (*Generator, error) {
	state, err := RecoverState(outputs)
	if err != nil {
		return nil, err
	}
	return NewFromState(variant, state[:])
}
