package bench

import (
	"math/rand/v2"
)

// Generator [0, upper] 균등 분포 난수로 배열을 채운다
type Generator struct {
	rng   *rand.Rand
	seed  uint64
	upper int
}

// NewGenerator 상한은 scale*n (원래 하네스의 0..1000*N).
// seed 가 0 이면 엔트로피에서 시드를 뽑는다.
func NewGenerator(seed uint64, n, scale int) *Generator {
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	return &Generator{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed:  seed,
		upper: scale * n,
	}
}

// Seed 실제로 쓰인 시드 (재현용)
func (g *Generator) Seed() uint64 { return g.seed }

func (g *Generator) Fill(buf []int) {
	for i := range buf {
		buf[i] = g.rng.IntN(g.upper + 1)
	}
}
