package genexpr

import (
	"fmt"
)

// Chromosome is an immutable candidate expression encoded as bits. Its fitness is always
// computed from its bits at construction.
type Chromosome struct {
	bits    []bool
	fitness float64
	ctx     *simulationContext
}

func (ctx *simulationContext) newChromosome(bits []bool) *Chromosome {
	return &Chromosome{
		bits:    bits,
		fitness: ctx.fitness(bits),
		ctx:     ctx,
	}
}

// NewChromosome scores a copy of bits against target using the default params
func NewChromosome(bits []bool, target float64) *Chromosome {
	params := *DefaultSimulationParams()
	params.EvalCacheSize = 0

	// Without a cache, context construction cannot fail
	ctx, _ := newSimulationContext(params, target)
	return ctx.newChromosome(copyBits(bits))
}

func copyBits(bits []bool) []bool {
	copied := make([]bool, len(bits))
	copy(copied, bits)
	return copied
}

func (c *Chromosome) Fitness() float64 {
	return c.fitness
}

func (c *Chromosome) Target() float64 {
	return c.ctx.target
}

func (c *Chromosome) Len() int {
	return len(c.bits)
}

// Bits returns a copy of the Chromosome's bits
func (c *Chromosome) Bits() []bool {
	return copyBits(c.bits)
}

// Decode returns the expression (possibly malformed) represented by this Chromosome
func (c *Chromosome) Decode() string {
	return Decode(c.bits)
}

// Value evaluates the decoded expression
func (c *Chromosome) Value() (float64, error) {
	return c.ctx.evaluate(c.Decode())
}

// IsSolution reports whether the fitness is within epsilon of a perfect score
func (c *Chromosome) IsSolution() bool {
	diff := 1 - c.fitness
	if diff < 0 {
		diff = -diff
	}
	return diff <= c.ctx.Epsilon
}

func (c *Chromosome) String() string {
	return FormatGeneString(c.bits)
}

func (c *Chromosome) VerboseString() string {
	strResult := "ERROR"
	if value, err := c.Value(); err == nil {
		strResult = fmt.Sprintf("%f", value)
	}

	return fmt.Sprintf("%s\n  %s\n    = %s (fitness %g)", c, c.Decode(), strResult, c.fitness)
}

// Copy returns an equal-valued Chromosome, rescored against the same target
func (c *Chromosome) Copy() *Chromosome {
	return c.ctx.newChromosome(copyBits(c.bits))
}

// Crossover with probability CrossoverRate swaps the tails of c and other at a random cut.
// Otherwise, copies of both parents are returned.
func (c *Chromosome) Crossover(other *Chromosome, rng Rand) (*Chromosome, *Chromosome) {
	if rng.Float64() >= c.ctx.CrossoverRate {
		return c.Copy(), other.Copy()
	}

	k := len(c.bits)
	if len(other.bits) > k {
		k = len(other.bits)
	}
	if k == 0 {
		return c.Copy(), other.Copy()
	}

	return c.CrossoverAt(other, rng.Intn(k))
}

// CrossoverAt builds two children from c and other cut at bit index cut. The first is c's bits
// before the cut followed by other's bits from the cut on; the second is the reverse. A cut
// beyond the end of a parent takes all of that parent's prefix and none of its suffix.
func (c *Chromosome) CrossoverAt(other *Chromosome, cut int) (*Chromosome, *Chromosome) {
	if cut < 0 {
		cut = 0
	}

	ourCut := minInt(cut, len(c.bits))
	theirCut := minInt(cut, len(other.bits))

	a := make([]bool, 0, ourCut+len(other.bits)-theirCut)
	a = append(a, c.bits[:ourCut]...)
	a = append(a, other.bits[theirCut:]...)

	b := make([]bool, 0, theirCut+len(c.bits)-ourCut)
	b = append(b, other.bits[:theirCut]...)
	b = append(b, c.bits[ourCut:]...)

	return c.ctx.newChromosome(a), c.ctx.newChromosome(b)
}

// Mutate returns a new Chromosome with each bit flipped with probability MutationRate
func (c *Chromosome) Mutate(rng Rand) *Chromosome {
	mutated := make([]bool, len(c.bits))
	for i, bit := range c.bits {
		if rng.Float64() < c.ctx.MutationRate {
			bit = !bit
		}
		mutated[i] = bit
	}
	return c.ctx.newChromosome(mutated)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
