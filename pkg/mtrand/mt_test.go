package mtrand

import (
	"errors"
	"testing"
)

// 参照値は各シードで最初の 8 出力と、1 ブロック目・2 ブロック目 (各 624 出力) の XOR です
var referenceVectors = []struct {
	name    string
	variant Variant
	seed    uint32
	first   []uint32
	block0  uint32
	block1  uint32
}{
	{
		name: "standard seed=0", variant: Standard, seed: 0,
		first:  []uint32{2357136044, 2546248239, 3071714933, 3626093760, 2588848963, 3684848379, 2340255427, 3638918503},
		block0: 0x9d9c1b81, block1: 0xfcb254bb,
	},
	{
		name: "standard seed=1", variant: Standard, seed: 1,
		first:  []uint32{1791095845, 4282876139, 3093770124, 4005303368, 491263, 550290313, 1298508491, 4290846341},
		block0: 0x95228c7b, block1: 0x7836f0a1,
	},
	{
		name: "standard seed=0xDEADBEEF", variant: Standard, seed: 0xdeadbeef,
		first:  []uint32{956529277, 3842322136, 3319553134, 1843186657, 2704993644, 595827513, 938518626, 1676224337},
		block0: 0xa78eed79, block1: 0xc265b684,
	},
	{
		name: "defective seed=0", variant: Defective, seed: 0,
		first:  []uint32{1927864384, 2546248239, 3071714933, 649471532, 2588848963, 3684848379, 2340255427, 3638918503},
		block0: 0xa2e85bf1, block1: 0x7037190c,
	},
	{
		name: "defective seed=1", variant: Defective, seed: 1,
		first:  []uint32{2488671945, 30435847, 3093770124, 4005303368, 4270887955, 3730516325, 3018997799, 4290846341},
		block0: 0xaa56cc0b, block1: 0xddd9433e,
	},
	{
		name: "defective seed=0xDEADBEEF", variant: Defective, seed: 0xdeadbeef,
		first:  []uint32{956529277, 3842322136, 994817666, 2471174413, 2704993644, 595827513, 938518626, 1676224337},
		block0: 0x59190795, block1: 0x03861c18,
	},
}

func TestGenerator_ReferenceVectors(t *testing.T) {
	for _, tt := range referenceVectors {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSeeded(tt.variant, tt.seed)
			if g.Variant() != tt.variant {
				t.Fatalf("Variant() = %s, want %s", g.Variant(), tt.variant)
			}

			out := make([]uint32, 2*StateSize)
			for i := range out {
				out[i] = g.Uint32()
			}

			for i, want := range tt.first {
				if out[i] != want {
					t.Errorf("index=%d: got=0x%08X, want=0x%08X", i, out[i], want)
				}
			}

			var x0, x1 uint32
			for _, v := range out[:StateSize] {
				x0 ^= v
			}
			for _, v := range out[StateSize:] {
				x1 ^= v
			}
			if x0 != tt.block0 {
				t.Errorf("block0: got=0x%08X, want=0x%08X", x0, tt.block0)
			}
			if x1 != tt.block1 {
				t.Errorf("block1: got=0x%08X, want=0x%08X", x1, tt.block1)
			}
		})
	}
}

func TestGenerator_KnownSequence(t *testing.T) {
	// MT19937 の参照実装の既定シード 5489 と、PHP 5 の mt_srand(1) の mt_rand()
	if got := NewSeeded(Standard, 5489).Uint32(); got != 3499211612 {
		t.Errorf("standard seed=5489: got=%d, want=3499211612", got)
	}
	if got := NewSeeded(Defective, 1).NextHalfRange(); got != 1244335972 {
		t.Errorf("defective seed=1: got=%d, want=1244335972", got)
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	// 同じシードで初期化すると同じシーケンスが得られることを確認
	for _, variant := range []Variant{Standard, Defective} {
		rng1 := NewSeeded(variant, 12345)
		rng2 := NewSeeded(variant, 12345)

		for i := 0; i < 3*StateSize; i++ {
			v1 := rng1.Uint32()
			v2 := rng2.Uint32()
			if v1 != v2 {
				t.Fatalf("%s: シーケンスが異なる: i=%d, v1=0x%08X, v2=0x%08X", variant, i, v1, v2)
			}
		}
	}
}

func TestGenerator_SeedExpansion(t *testing.T) {
	g := NewSeeded(Standard, 5489)
	state := g.State()

	if state[0] != 5489 {
		t.Errorf("state[0]: got=%d, want=5489", state[0])
	}
	if state[1] != 1301868182 {
		t.Errorf("state[1]: got=%d, want=1301868182", state[1])
	}
	if g.Cursor() != StateSize {
		t.Errorf("Cursor() = %d, want %d", g.Cursor(), StateSize)
	}
	if !g.Seeded() {
		t.Error("Seeded() should be true")
	}
	if g.Reloads() != 0 {
		t.Errorf("Reloads() = %d, want 0", g.Reloads())
	}
}

func TestGenerator_VariantDivergence(t *testing.T) {
	seeds := []uint32{0, 1, 0xdeadbeef}
	for _, seed := range seeds {
		std := NewSeeded(Standard, seed)
		def := NewSeeded(Defective, seed)

		// ツイスト前の状態はシードだけで決まる
		if std.State() != def.State() {
			t.Fatalf("seed=0x%08X: ツイスト前の状態が異なる", seed)
		}

		diverged := false
		for i := 0; i < StateSize; i++ {
			if std.Uint32() != def.Uint32() {
				diverged = true
				break
			}
		}
		if !diverged {
			t.Errorf("seed=0x%08X: 最初の再生成後も出力が一致した", seed)
		}
	}
}

func TestGenerator_RegenerationBoundary(t *testing.T) {
	g := NewSeeded(Defective, 42)

	for i := 0; i < StateSize; i++ {
		g.Uint32()
		if g.Reloads() != 1 {
			t.Fatalf("read %d: Reloads() = %d, want 1", i+1, g.Reloads())
		}
	}
	if g.Cursor() != StateSize {
		t.Fatalf("Cursor() = %d, want %d", g.Cursor(), StateSize)
	}

	g.Uint32()
	if g.Reloads() != 2 {
		t.Errorf("Reloads() = %d, want 2", g.Reloads())
	}
	if g.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", g.Cursor())
	}
}

func TestGenerator_AutoSeed(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
	}{
		{"standard", Standard},
		{"defective", Defective},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unseeded := New(tt.variant)
			explicit := NewSeeded(tt.variant, DefaultSeed)

			if unseeded.Seeded() {
				t.Fatal("New() should return an unseeded generator")
			}
			first := unseeded.Uint32()
			if !unseeded.Seeded() {
				t.Fatal("Seeded() should be true after the first read")
			}
			if want := explicit.Uint32(); first != want {
				t.Errorf("first: got=0x%08X, want=0x%08X", first, want)
			}

			for i := 0; i < 1000; i++ {
				got, want := unseeded.Uint32(), explicit.Uint32()
				if got != want {
					t.Fatalf("i=%d: got=0x%08X, want=0x%08X", i, got, want)
				}
			}
		})
	}
}

func TestGenerator_SetState(t *testing.T) {
	src := NewSeeded(Standard, 777)
	src.Uint32()
	state := src.State()

	g, err := NewFromState(Standard, state[:])
	if err != nil {
		t.Fatalf("NewFromState failed: %v", err)
	}
	if !g.Seeded() {
		t.Error("Seeded() should be true")
	}
	if g.Cursor() != StateSize {
		t.Errorf("Cursor() = %d, want %d", g.Cursor(), StateSize)
	}

	// 呼び出し側のスライスを書き換えても影響しない
	words := state[:]
	g2, err := NewFromState(Standard, words)
	if err != nil {
		t.Fatalf("NewFromState failed: %v", err)
	}
	words[0] ^= 0xffffffff
	if v1, v2 := g.Uint32(), g2.Uint32(); v1 != v2 {
		t.Errorf("got=0x%08X, want=0x%08X", v2, v1)
	}
}

func TestGenerator_SetStateLength(t *testing.T) {
	tests := []struct {
		name string
		len  int
	}{
		{"空", 0},
		{"短い", StateSize - 1},
		{"長い", StateSize + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(Defective)
			err := g.SetState(make([]uint32, tt.len))
			if !errors.Is(err, ErrStateLength) {
				t.Errorf("Expected ErrStateLength, got %v", err)
			}
			if g.Seeded() {
				t.Error("Seeded() should stay false")
			}
		})
	}
}

func TestGenerator_ReseedResetsCursor(t *testing.T) {
	g := NewSeeded(Standard, 1)
	for i := 0; i < 10; i++ {
		g.Uint32()
	}
	g.Seed(1)
	if g.Cursor() != StateSize {
		t.Errorf("Cursor() = %d, want %d", g.Cursor(), StateSize)
	}
	if got := g.Uint32(); got != 1791095845 {
		t.Errorf("got=%d, want=1791095845", got)
	}
}

func TestGenerator_LargeSequence(t *testing.T) {
	// 大量の乱数を生成してもパニックしないことを確認
	g := NewSeeded(Defective, 42)
	for i := 0; i < 100000; i++ {
		_ = g.Uint32()
	}
	if want := uint64(100000/StateSize + 1); g.Reloads() != want {
		t.Errorf("Reloads() = %d, want %d", g.Reloads(), want)
	}
}
