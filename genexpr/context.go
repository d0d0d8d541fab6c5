package genexpr

import (
	"math"

	lru "github.com/hashicorp/golang-lru"
	"github.com/they4kman/exprolution/expr"
)

type simulationContext struct {
	SimulationParams

	target float64

	// Decoded expression -> evaluation. Nil when caching is disabled.
	evalCache *lru.Cache
}

type evaluation struct {
	value float64
	err   error
}

func newSimulationContext(params SimulationParams, target float64) (*simulationContext, error) {
	ctx := &simulationContext{
		SimulationParams: params,
		target:           target,
	}

	if params.EvalCacheSize > 0 {
		cache, err := lru.New(params.EvalCacheSize)
		if err != nil {
			return nil, err
		}
		ctx.evalCache = cache
	}
	return ctx, nil
}

func (ctx *simulationContext) evaluate(expression string) (float64, error) {
	if ctx.evalCache != nil {
		if cached, ok := ctx.evalCache.Get(expression); ok {
			e := cached.(evaluation)
			return e.value, e.err
		}
	}

	value, err := expr.Evaluate(expression)
	if ctx.evalCache != nil {
		ctx.evalCache.Add(expression, evaluation{value: value, err: err})
	}
	return value, err
}

// fitness scores bits by how close their expression evaluates to the target: 1 for an
// exact match, approaching 0 with distance. Expressions that fail to evaluate, or evaluate
// to NaN, score exactly 0.
func (ctx *simulationContext) fitness(bits []bool) float64 {
	value, err := ctx.evaluate(Decode(bits))
	if err != nil || math.IsNaN(value) {
		return 0
	}
	return 1 / (1 + math.Abs(value-ctx.target))
}
