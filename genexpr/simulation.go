package genexpr

import (
	"fmt"
	"io"
)

type Population []*Chromosome

func (pop Population) TotalFitness() float64 {
	total := 0.0
	for _, c := range pop {
		total += c.fitness
	}
	return total
}

// Fittest returns the member with the highest fitness, the earliest on ties
func (pop Population) Fittest() *Chromosome {
	var fittest *Chromosome
	for _, c := range pop {
		if fittest == nil || c.fitness > fittest.fitness {
			fittest = c
		}
	}
	return fittest
}

// Select roulette-selects a member, each with a chance proportional to its share of
// totalFitness. If totalFitness is zero, the first member is returned.
func (pop Population) Select(totalFitness float64, rng Rand) *Chromosome {
	if totalFitness == 0 {
		return pop[0]
	}

	slice := rng.Float64() * totalFitness
	acc := 0.0
	for _, c := range pop {
		acc += c.fitness
		if acc >= slice {
			return c
		}
	}

	// Rounding in the running sum can leave it just short of slice
	return pop[len(pop)-1]
}

type Simulation struct {
	ctx *simulationContext
	rng Rand

	iteration  int
	population Population
	solution   *Chromosome
}

func NewSimulation(params *SimulationParams, rng Rand) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	ctx, err := newSimulationContext(*params, 0)
	if err != nil {
		return nil, fmt.Errorf("unable to create evaluation cache: %w", err)
	}

	return &Simulation{
		ctx: ctx,
		rng: rng,
	}, nil
}

// Init sets the target and creates the initial Population
func (sim *Simulation) Init(target float64) {
	sim.ctx.target = target
	sim.iteration = 0
	sim.solution = nil

	sim.population = make(Population, sim.ctx.PopulationSize)
	for i := range sim.population {
		sim.population[i] = sim.RandomChromosome()
	}
}

func (sim *Simulation) Params() *SimulationParams {
	params := sim.ctx.SimulationParams
	return &params
}

func (sim *Simulation) Target() float64 {
	return sim.ctx.target
}

// Iteration is the index of the current generation, starting at 0
func (sim *Simulation) Iteration() int {
	return sim.iteration
}

func (sim *Simulation) Population() Population {
	return sim.population
}

// Solution returns the solution found by Step, or nil
func (sim *Simulation) Solution() *Chromosome {
	return sim.solution
}

// NewChromosome scores bits against the Simulation's target. bits must not be modified afterwards.
func (sim *Simulation) NewChromosome(bits []bool) *Chromosome {
	return sim.ctx.newChromosome(bits)
}

// RandomChromosome creates a Chromosome of a random number of quadruplets with uniformly random bits
func (sim *Simulation) RandomChromosome() *Chromosome {
	numQuads := sim.ctx.ChromosomeMinQuads + sim.rng.Intn(sim.ctx.ChromosomeMaxQuads-sim.ctx.ChromosomeMinQuads)

	bits := make([]bool, numQuads*GeneBits)
	for i := range bits {
		bits[i] = sim.rng.Float64() < 0.5
	}
	return sim.ctx.newChromosome(bits)
}

func (sim *Simulation) EncodeExpression(expression string) (*Chromosome, error) {
	bits, err := EncodeExpression(expression)
	if err != nil {
		return nil, err
	}
	return sim.ctx.newChromosome(bits), nil
}

func (sim *Simulation) ChromosomeFromGeneString(geneString string) (*Chromosome, error) {
	bits, err := ParseGeneString(geneString)
	if err != nil {
		return nil, err
	}
	return sim.ctx.newChromosome(bits), nil
}

// Epoch breeds the generation following pop: pairs of roulette-selected parents are crossed
// over and mutated until the new generation is at least as large as pop
func (sim *Simulation) Epoch(pop Population) Population {
	totalFitness := pop.TotalFitness()

	generation := make(Population, 0, len(pop)+1)
	for len(generation) < len(pop) {
		a := pop.Select(totalFitness, sim.rng)
		b := pop.Select(totalFitness, sim.rng)

		a, b = a.Crossover(b, sim.rng)
		generation = append(generation, a.Mutate(sim.rng), b.Mutate(sim.rng))
	}

	if sim.ctx.ExactPopulationSize && len(generation) > len(pop) {
		generation = generation[:len(pop)]
	}
	return generation
}

// Step checks the current generation for a solution and, finding none, replaces it with the
// next. Returns whether a solution has been found.
func (sim *Simulation) Step() bool {
	if sim.solution != nil {
		return true
	}

	for _, c := range sim.population {
		if c.IsSolution() {
			sim.solution = c
			return true
		}
	}

	sim.population = sim.Epoch(sim.population)
	sim.iteration++
	return false
}

// Solve steps until a solution is found or MaxGenerations is exhausted. Returns the generation
// the solution was found in, or MaxGenerations and nil.
func (sim *Simulation) Solve() (int, *Chromosome) {
	for sim.iteration < sim.ctx.MaxGenerations {
		if sim.Step() {
			return sim.iteration, sim.solution
		}
	}
	return sim.ctx.MaxGenerations, nil
}

// Run is Solve, printing progress and the outcome to w
func (sim *Simulation) Run(w io.Writer) (int, *Chromosome) {
	r := newReporter(w, sim.ctx.ReportInterval, sim.ctx.MaxGenerations)

	for sim.iteration < sim.ctx.MaxGenerations {
		r.generation(sim.iteration, sim.population)
		if sim.Step() {
			r.solved(sim.iteration, sim.solution)
			return sim.iteration, sim.solution
		}
	}

	r.unsolved(sim.ctx.MaxGenerations, sim.population)
	return sim.ctx.MaxGenerations, nil
}

// GA searches for an expression evaluating to target with a population of popSize, using the
// default params otherwise
func GA(popSize int, target float64, rng Rand) (int, *Chromosome, error) {
	params := DefaultSimulationParams()
	params.PopulationSize = popSize

	sim, err := NewSimulation(params, rng)
	if err != nil {
		return 0, nil, err
	}

	sim.Init(target)
	generations, solution := sim.Solve()
	return generations, solution, nil
}
