// Package mtrand は PHP の mt_rand 系で使われているメルセンヌ・ツイスタを
// ビット単位で再現します。標準の MT19937 と、PHP のツイスト処理の不具合を
// 含む Defective 版の両方を扱えます。
package mtrand

const (
	// StateSize は内部状態のワード数です
	StateSize = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	// DefaultSeed はシードされていないまま読み出したときに使われるシードです
	DefaultSeed uint32 = 0xdeadbeef
)

// Generator はメルセンヌ・ツイスタの状態機械です。
// 内部で排他制御は行わないため、複数のゴルーチンから使う場合は呼び出し側で直列化してください。
type Generator struct {
	state   [StateSize]uint32
	cursor  int
	seeded  bool
	variant Variant
	reloads uint64
}

// New はシードされていない Generator を返します。
// 最初の読み出しで DefaultSeed によるシードが行われます。
func New(variant Variant) *Generator {
	return &Generator{
		cursor:  StateSize,
		variant: variant,
	}
}

// NewSeeded は指定されたシードで初期化した Generator を返します
func NewSeeded(variant Variant, seed uint32) *Generator {
	g := New(variant)
	g.Seed(seed)
	return g
}

// NewFromState は外部で復元された状態ベクトルを設定した Generator を返します
func NewFromState(variant Variant, words []uint32) (*Generator, error) {
	g := New(variant)
	if err := g.SetState(words); err != nil {
		return nil, err
	}
	return g, nil
}

// Seed は 32 ビットのシードから状態ベクトル全体を導出します
func (g *Generator) Seed(seed uint32) {
	g.state[0] = seed
	for i := 1; i < StateSize; i++ {
		g.state[i] = 1812433253*(g.state[i-1]^(g.state[i-1]>>30)) + uint32(i)
	}
	g.cursor = StateSize
	g.seeded = true
}

// SetState は状態ベクトルをそのまま置き換えます。長さ以外の検証は行いません。
func (g *Generator) SetState(words []uint32) error {
	if len(words) != StateSize {
		return ErrStateLength
	}
	copy(g.state[:], words)
	g.cursor = StateSize
	g.seeded = true
	return nil
}

// Variant は構築時に選ばれたツイストの種類を返します
func (g *Generator) Variant() Variant {
	return g.variant
}

// Seeded はシードまたは状態設定が済んでいるかを返します
func (g *Generator) Seeded() bool {
	return g.seeded
}

// Cursor は次に読み出すワードの位置を返します
func (g *Generator) Cursor() int {
	return g.cursor
}

// Reloads はこれまでに状態を再生成した回数を返します
func (g *Generator) Reloads() uint64 {
	return g.reloads
}

// State は現在の状態ベクトルのコピーを返します
func (g *Generator) State() [StateSize]uint32 {
	return g.state
}

// ensureSeeded は未シードの状態から DefaultSeed でシード済みの状態へ遷移させます
func (g *Generator) ensureSeeded() {
	if !g.seeded {
		g.Seed(DefaultSeed)
	}
}

// reload は状態ベクトル 624 ワードをすべて再生成します
func (g *Generator) reload() {
	var i int

	for i = 0; i < StateSize-m; i++ {
		g.state[i] = g.variant.twist(g.state[i+m], g.state[i], g.state[i+1])
	}
	for ; i < StateSize-1; i++ {
		g.state[i] = g.variant.twist(g.state[i+(m-StateSize)], g.state[i], g.state[i+1])
	}
	g.state[StateSize-1] = g.variant.twist(g.state[m-1], g.state[StateSize-1], g.state[0])

	g.cursor = 0
	g.reloads++
}

// Uint32 は次の 32 ビット出力 (テンパリング済みの生ワード) を返します
func (g *Generator) Uint32() uint32 {
	g.ensureSeeded()

	if g.cursor == StateSize {
		g.reload()
	}

	y := g.state[g.cursor]
	g.cursor++

	return temper(y)
}

// temper はテンパリングを適用します
func temper(y uint32) uint32 {
	y ^= (y >> 11)
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= (y >> 18)
	return y
}
