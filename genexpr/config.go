package genexpr

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type SimulationParams struct {
	// Number of Chromosomes in each generation
	PopulationSize int `toml:"population_size"`

	// Number of generations to breed before giving up
	MaxGenerations int `toml:"max_generations"`

	// Random Chromosomes have between ChromosomeMinQuads (inclusive) and
	// ChromosomeMaxQuads (exclusive) quadruplets
	ChromosomeMinQuads int `toml:"chromosome_min_quads"`
	ChromosomeMaxQuads int `toml:"chromosome_max_quads"`

	// Probability that two selected parents swap bits at a random cut, rather than
	// passing into the next generation as-is
	CrossoverRate float64 `toml:"crossover_rate"`

	// Probability that any single bit is flipped when a Chromosome is mutated
	MutationRate float64 `toml:"mutation_rate"`

	// A Chromosome whose fitness is within Epsilon of 1 is a solution
	Epsilon float64 `toml:"epsilon"`

	// Number of decoded expressions whose evaluation is remembered. Set to 0 to disable caching.
	EvalCacheSize int `toml:"eval_cache_size"`

	// Breeding happens in pairs, which overshoots odd population sizes by one.
	// When set, each new generation is truncated back to PopulationSize.
	ExactPopulationSize bool `toml:"exact_population_size"`

	// Generations between progress lines printed by Simulation.Run. Set to 0 to disable.
	ReportInterval int `toml:"report_interval"`
}

func DefaultSimulationParams() *SimulationParams {
	return &SimulationParams{
		PopulationSize: 500,
		MaxGenerations: 1000,

		ChromosomeMinQuads: 3,
		ChromosomeMaxQuads: 101,

		CrossoverRate: 0.70,
		MutationRate:  0.01,

		Epsilon: 1e-9,

		EvalCacheSize: 4096,

		ExactPopulationSize: true,

		ReportInterval: 10,
	}
}

// LoadParams reads a TOML file over the default params
func LoadParams(path string) (*SimulationParams, error) {
	params := DefaultSimulationParams()

	md, err := toml.DecodeFile(path, params)
	if err != nil {
		return nil, fmt.Errorf("unable to load params from %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params in %s: %w", path, err)
	}
	return params, nil
}

func (p *SimulationParams) Validate() error {
	switch {
	case p.PopulationSize < 1:
		return fmt.Errorf("population size %d must be at least 1", p.PopulationSize)
	case p.MaxGenerations < 1:
		return fmt.Errorf("max generations %d must be at least 1", p.MaxGenerations)
	case p.ChromosomeMinQuads < 1:
		return fmt.Errorf("chromosome min quads %d must be at least 1", p.ChromosomeMinQuads)
	case p.ChromosomeMinQuads >= p.ChromosomeMaxQuads:
		return fmt.Errorf("chromosome min quads %d must be less than max quads %d", p.ChromosomeMinQuads, p.ChromosomeMaxQuads)
	case p.CrossoverRate < 0 || p.CrossoverRate > 1:
		return fmt.Errorf("crossover rate %g must be within [0, 1]", p.CrossoverRate)
	case p.MutationRate < 0 || p.MutationRate > 1:
		return fmt.Errorf("mutation rate %g must be within [0, 1]", p.MutationRate)
	case p.Epsilon < 0:
		return fmt.Errorf("epsilon %g must not be negative", p.Epsilon)
	case p.EvalCacheSize < 0:
		return fmt.Errorf("eval cache size %d must not be negative", p.EvalCacheSize)
	case p.ReportInterval < 0:
		return fmt.Errorf("report interval %d must not be negative", p.ReportInterval)
	}
	return nil
}
