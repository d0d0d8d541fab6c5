package genexpr

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numPrinter = message.NewPrinter(language.English)

type reporter struct {
	w              io.Writer
	interval       int
	maxGenerations int
}

func newReporter(w io.Writer, interval, maxGenerations int) *reporter {
	return &reporter{
		w:              w,
		interval:       interval,
		maxGenerations: maxGenerations,
	}
}

// generation prints every interval generations, and each of the last ten
func (r *reporter) generation(i int, pop Population) {
	if r.interval <= 0 {
		return
	}
	if i%r.interval != r.interval-1 && i+10 < r.maxGenerations {
		return
	}

	numPrinter.Fprintf(r.w, "Generation %d of %d\n", i+1, r.maxGenerations)
	if fittest := pop.Fittest(); fittest != nil && (i+1)%(r.interval*10) == 0 {
		numPrinter.Fprintf(r.w, "\n%s\n\n", fittest.VerboseString())
	}
}

func (r *reporter) solved(generations int, solution *Chromosome) {
	numPrinter.Fprintf(r.w, "Found a solution in %d generations:\n\t%s\n", generations, solution.Decode())
}

func (r *reporter) unsolved(generations int, pop Population) {
	numPrinter.Fprintf(r.w, "Could not find a solution in %d generations.\n", generations)
	if fittest := pop.Fittest(); fittest != nil {
		numPrinter.Fprintf(r.w, "Closest:\n\t%s\n", fittest.Decode())
	}
}
