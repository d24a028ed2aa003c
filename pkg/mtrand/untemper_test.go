package mtrand

import (
	"errors"
	"testing"
)

func TestUntemper(t *testing.T) {
	values := []uint32{0, 1, 0x7fffffff, 0x80000000, 0xffffffff, 0xdeadbeef, 0x9908b0df}
	g := NewSeeded(Standard, 2024)
	for i := 0; i < 1000; i++ {
		values = append(values, g.Uint32())
	}

	for _, v := range values {
		if got := Untemper(temper(v)); got != v {
			t.Errorf("Untemper(temper(0x%08X)) = 0x%08X", v, got)
		}
	}
}

func TestClone(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		offset  int
	}{
		{"standard ブロック先頭から", Standard, 0},
		{"standard 途中から", Standard, 100},
		{"standard ブロックをまたぐ", Standard, 700},
		{"defective ブロック先頭から", Defective, 0},
		{"defective 途中から", Defective, 1},
		{"defective ブロックをまたぐ", Defective, 623},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewSeeded(tt.variant, 5489)
			observed := make([]uint32, tt.offset+StateSize)
			for i := range observed {
				observed[i] = target.Uint32()
			}

			clone, err := Clone(tt.variant, observed)
			if err != nil {
				t.Fatalf("Clone failed: %v", err)
			}
			if clone.Variant() != tt.variant {
				t.Errorf("Variant() = %s, want %s", clone.Variant(), tt.variant)
			}

			for i := 0; i < 2000; i++ {
				want, got := target.Uint32(), clone.Uint32()
				if got != want {
					t.Fatalf("i=%d: got=0x%08X, want=0x%08X", i, got, want)
				}
			}
		})
	}
}

func TestRecoverState_TooFewOutputs(t *testing.T) {
	_, err := RecoverState(make([]uint32, StateSize-1))
	if !errors.Is(err, ErrTooFewOutputs) {
		t.Errorf("Expected ErrTooFewOutputs, got %v", err)
	}

	_, err = Clone(Defective, nil)
	if !errors.Is(err, ErrTooFewOutputs) {
		t.Errorf("Expected ErrTooFewOutputs, got %v", err)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input   string
		want    Variant
		wantErr bool
	}{
		{"standard", Standard, false},
		{"MT", Standard, false},
		{"mt19937", Standard, false},
		{"defective", Defective, false},
		{" php ", Defective, false},
		{"xorshift", Standard, true},
		{"", Standard, true},
	}

	for _, tt := range tests {
		got, err := ParseVariant(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownVariant) {
				t.Errorf("ParseVariant(%q): expected ErrUnknownVariant, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVariant(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVariant(%q) = %s, want %s", tt.input, got, tt.want)
		}
		if g := New(got); g.Variant() != tt.want {
			t.Errorf("New(%s).Variant() = %s", got, g.Variant())
		}
	}

	for v, want := range map[Variant]string{Standard: "standard", Defective: "defective", Variant(7): "Variant(7)"} {
		if v.String() != want {
			t.Errorf("String() = %s, want %s", v.String(), want)
		}
	}
}
