package mtrand

import "math/rand"

// Source は Generator を math/rand の Source64 として使うためのアダプタです
type Source struct {
	g *Generator
}

var _ rand.Source64 = (*Source)(nil)

// NewSource は指定された Generator を包む Source を返します
func NewSource(g *Generator) *Source {
	return &Source{g: g}
}

// Seed は下位 32 ビットをシードとして使います
func (s *Source) Seed(seed int64) {
	s.g.Seed(uint32(seed))
}

// Uint64 は 2 回分の出力を上位・下位の順に連結して返します
func (s *Source) Uint64() uint64 {
	hi := uint64(s.g.Uint32())
	lo := uint64(s.g.Uint32())
	return hi<<32 | lo
}

// Int63 は Uint64 の上位 63 ビットを返します
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
