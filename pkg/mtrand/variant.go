package mtrand

import (
	"fmt"
	"strings"
)

// Variant はツイスト処理の種類です
type Variant int

const (
	// Standard は本来の MT19937 のツイストです。フィードバックビットを次のワード v から取ります。
	Standard Variant = iota
	// Defective は PHP のツイストです。フィードバックビットを現在のワード u から取ります。
	Defective
)

// String は Variant の名前を返します
func (vr Variant) String() string {
	switch vr {
	case Standard:
		return "standard"
	case Defective:
		return "defective"
	default:
		return fmt.Sprintf("Variant(%d)", int(vr))
	}
}

// ParseVariant は名前から Variant を返します。
// "php" は "defective"、"mt" と "mt19937" は "standard" の別名です。
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard", "mt", "mt19937":
		return Standard, nil
	case "defective", "php":
		return Defective, nil
	default:
		return Standard, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

// twist は 3 つの隣接ワードから新しいワードを計算します。
// m は 397 個先のワード、u は現在のワード、v は次のワードです。
func (vr Variant) twist(m, u, v uint32) uint32 {
	feedback := v
	if vr == Defective {
		feedback = u
	}
	y := (m ^ (((u & upperMask) | (v & lowerMask)) >> 1))
	if feedback&0x1 != 0 {
		y ^= matrixA
	}
	return y
}
