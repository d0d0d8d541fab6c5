package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/they4kman/exprolution/expr"
	"github.com/they4kman/exprolution/genexpr"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("exprolution", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: exprolution [flags] <target>\n\n")
		fmt.Fprintf(stderr, "Searches for an arithmetic expression of digits and + - * / ** evaluating to target.\n\n")
		flags.PrintDefaults()
	}

	configPath := flags.String("config", "", "TOML file of simulation params")
	populationSize := flags.Int("population-size", 0, "Number of chromosomes in the population (overrides config)")
	maxGenerations := flags.Int("max-generations", 0, "Number of generations to search before giving up (overrides config)")
	seed := flags.Int64("seed", 0, "Random seed. A time-based seed is used if 0")
	evalExpression := flags.String("eval", "", "Evaluate an expression and print its value, instead of searching")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *evalExpression != "" {
		value, err := expr.Evaluate(*evalExpression)
		if err != nil {
			fmt.Fprintf(stderr, "Unable to evaluate %q: %s\n", *evalExpression, err)
			return 1
		}
		fmt.Fprintln(stdout, value)
		return 0
	}

	target, err := parseTargetArg(flags.Args())
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "%s\n\n", err)
		}
		flags.Usage()
		return 2
	}

	params := genexpr.DefaultSimulationParams()
	if *configPath != "" {
		if params, err = genexpr.LoadParams(*configPath); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	if *populationSize != 0 {
		params.PopulationSize = *populationSize
	}
	if *maxGenerations != 0 {
		params.MaxGenerations = *maxGenerations
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	sim, err := genexpr.NewSimulation(params, genexpr.NewRand(*seed))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	sim.Init(target)
	sim.Run(stdout)
	return 0
}

func parseTargetArg(args []string) (float64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	return genexpr.ParseTarget(args[0])
}
