package genexpr

import (
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/they4kman/exprolution/expr"
)

var _ = Describe("Chromosome", func() {
	DescribeTable("Fitness",
		func(expression string, target float64, expectedFitness float64) {
			bits, err := EncodeExpression(expression)
			Expect(err).ToNot(HaveOccurred())

			c := NewChromosome(bits, target)
			Expect(c.Decode()).To(Equal(expression))
			Expect(c.Fitness()).To(BeNumerically("~", expectedFitness, 1e-12))
		},
		Entry("exact match", "12+3", 15.0, 1.0),
		Entry("off by one", "12+3", 14.0, 0.5),
		Entry("off by two", "12+3", 17.0, 1.0/3),
		Entry("fractional", "7/20", 0.0, 1/1.35),
		Entry("malformed", "+-12", 15.0, 0.0),
		Entry("unbalanced", "1+", 1.0, 0.0),
		Entry("infinite", "1/00", 1.0, 0.0),
		Entry("not a number", "0/00", 0.0, 0.0),
	)

	It("scores within (0, 1] exactly when the expression evaluates to a finite number", func() {
		rng := NewRand(7)
		for n := 0; n < 500; n++ {
			bits := make([]bool, GeneBits*(1+rng.Intn(12)))
			for i := range bits {
				bits[i] = rng.Intn(2) == 1
			}

			c := NewChromosome(bits, 100)
			value, err := expr.Evaluate(c.Decode())
			if err == nil && !math.IsNaN(value) && !math.IsInf(value, 0) {
				Expect(c.Fitness()).To(And(BeNumerically(">", 0), BeNumerically("<=", 1)), c.Decode())
			} else {
				Expect(c.Fitness()).To(BeZero(), c.Decode())
			}
		}
	})

	It("keeps its own copy of the bits", func() {
		bits, _ := EncodeExpression("12+3")
		c := NewChromosome(bits, 15)
		bits[0] = !bits[0]

		Expect(c.Decode()).To(Equal("12+3"))
		c.Bits()[0] = !bits[0]
		Expect(c.Decode()).To(Equal("12+3"))
	})

	Describe("CrossoverAt", func() {
		var sim *Simulation

		BeforeEach(func() {
			sim = newTestSimulation(DefaultSimulationParams(), 0)
		})

		DescribeTable("swaps tails",
			func(aGeneString, bGeneString string, cut int, expectedAGeneString, expectedBGeneString string) {
				a := mustGeneString(sim, aGeneString)
				b := mustGeneString(sim, bGeneString)

				newA, newB := a.CrossoverAt(b, cut)
				Expect([]string{newA.String(), newB.String()}).To(Equal([]string{expectedAGeneString, expectedBGeneString}))
			},
			Entry("cross(0000 0000, 1111 1111 1111, 3)",
				"0000 0000", "1111 1111 1111", 3,
				"0001 1111 1111", "1110 0000"),
			Entry("cross(1111 1111, 0000 0000, 0)",
				"1111 1111", "0000 0000", 0,
				"0000 0000", "1111 1111"),
			Entry("cut past the shorter parent",
				"0000", "1111 1111 1111", 6,
				"0000 1111 11", "1111 11"),
			Entry("cut past both parents",
				"0000", "1111 1111", 20,
				"0000", "1111 1111"),
		)

		It("can be reversed to recover both parents", func() {
			rng := NewRand(3)
			for n := 0; n < 200; n++ {
				a := sim.RandomChromosome()
				b := sim.RandomChromosome()
				k := a.Len()
				if b.Len() > k {
					k = b.Len()
				}
				cut := rng.Intn(k)

				newA, newB := a.CrossoverAt(b, cut)
				Expect(newA.Len()).To(BeNumerically("<=", k))
				Expect(newB.Len()).To(BeNumerically("<=", k))

				ourCut, theirCut := minInt(cut, a.Len()), minInt(cut, b.Len())
				recoveredA := append(newA.Bits()[:ourCut], newB.Bits()[theirCut:]...)
				recoveredB := append(newB.Bits()[:theirCut], newA.Bits()[ourCut:]...)
				Expect(recoveredA).To(Equal(a.Bits()))
				Expect(recoveredB).To(Equal(b.Bits()))
			}
		})
	})

	Describe("Crossover", func() {
		var sim *Simulation
		var a, b *Chromosome

		BeforeEach(func() {
			sim = newTestSimulation(DefaultSimulationParams(), 0)
			a = mustGeneString(sim, "0000 0000")
			b = mustGeneString(sim, "1111 1111 1111")
		})

		It("cuts at a random point below the crossover rate", func() {
			newA, newB := a.Crossover(b, &scriptedRand{floats: []float64{0.69}, ints: []int{3}})
			Expect(newA.String()).To(Equal("0001 1111 1111"))
			Expect(newB.String()).To(Equal("1110 0000"))
		})

		It("copies the parents at or above the crossover rate", func() {
			newA, newB := a.Crossover(b, &scriptedRand{floats: []float64{0.70}, ints: []int{3}})
			Expect(newA.String()).To(Equal(a.String()))
			Expect(newB.String()).To(Equal(b.String()))
			Expect(newA).ToNot(BeIdenticalTo(a))
			Expect(newB).ToNot(BeIdenticalTo(b))
		})

		It("rescores the children", func() {
			sim.ctx.target = 12
			a = mustGeneString(sim, "0001 0001")
			b = mustGeneString(sim, "0000 0010")
			Expect(a.Fitness()).To(BeNumerically("~", 0.5, 1e-12))

			newA, newB := a.CrossoverAt(b, 4)
			Expect(newA.Decode()).To(Equal("12"))
			Expect(newA.Fitness()).To(Equal(1.0))
			Expect(newB.Decode()).To(Equal("01"))
			Expect(newB.Fitness()).To(BeNumerically("~", 1.0/12, 1e-12))
		})
	})

	Describe("Mutate", func() {
		var sim *Simulation

		BeforeEach(func() {
			sim = newTestSimulation(DefaultSimulationParams(), 0)
		})

		It("flips bits drawn below the mutation rate", func() {
			c := mustGeneString(sim, "0001 1010 0010")
			mutated := c.Mutate(constRand(0))
			Expect(mutated.String()).To(Equal("1110 0101 1101"))
			Expect(c.String()).To(Equal("0001 1010 0010"))
		})

		It("leaves bits drawn at or above the mutation rate", func() {
			c := mustGeneString(sim, "0001 1010 0010")
			mutated := c.Mutate(constRand(0.01))
			Expect(mutated.String()).To(Equal(c.String()))
			Expect(mutated).ToNot(BeIdenticalTo(c))
		})

		It("flips only the selected bits", func() {
			c := mustGeneString(sim, "0000 0000")
			mutated := c.Mutate(&scriptedRand{floats: []float64{0.5, 0.005, 0.5, 0.5, 0.5, 0.5, 0.5, 0.001}})
			Expect(mutated.String()).To(Equal("0100 0001"))
		})

		It("rescores the mutated chromosome", func() {
			sim.ctx.target = 14
			c := mustGeneString(sim, "0000 0001")
			Expect(c.Fitness()).To(BeNumerically("~", 1.0/14, 1e-12))

			mutated := c.Mutate(&scriptedRand{floats: []float64{0.5, 0.5, 0.5, 0.0}})
			Expect(mutated.Decode()).To(Equal("11"))
			Expect(mutated.Fitness()).To(BeNumerically("~", 1.0/4, 1e-12))
		})
	})

	It("renders a verbose description", func() {
		sim := newTestSimulation(DefaultSimulationParams(), 15)
		c, err := sim.EncodeExpression("12+3")
		Expect(err).ToNot(HaveOccurred())
		Expect(c.VerboseString()).To(Equal("0001 0010 1010 0011\n  12+3\n    = 15.000000 (fitness 1)"))

		c, _ = sim.EncodeExpression("1+")
		Expect(c.VerboseString()).To(ContainSubstring("= ERROR"))
	})
})
