// Command tspga is the CLI driver around the tsp evolutionary solver: it
// parses a TSPLIB instance file, wires MetaHeuristicParams from flags (with
// .env-provided defaults), runs the solver under a wall-clock budget, and
// prints the stdout report. None of the search logic lives here — this is
// the collaborator layer the core package deliberately stays ignorant of.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/varkade/evotsp/geo"
	"github.com/varkade/evotsp/tsp"
)

func main() {
	os.Exit(run())
}

// getEnvString, getEnvInt, and getEnvFloat read a TSPGA_* environment
// variable (populated either by the real environment or by godotenv.Load's
// .env file), falling back to fallback when the variable is unset or
// unparseable. Flag defaults below are computed from these so a flag the
// caller never passes on the command line still picks up an .env override,
// while an explicit flag always wins (flag.Parse runs after the defaults
// are set).
func getEnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func run() int {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found (using environment/flag defaults)")
	}

	var (
		filename       = flag.String("filename", getEnvString("TSPGA_FILENAME", ""), "TSPLIB instance file")
		timeoutMs      = flag.Int("timeout-ms", getEnvInt("TSPGA_TIMEOUT_MS", 5000), "wall-clock budget in milliseconds")
		mutationProb   = flag.Float64("mutation-probability", getEnvFloat("TSPGA_MUTATION_PROBABILITY", 0.0183177033), "per-position mutation draw probability")
		crossoverRate  = flag.Float64("crossover-rate", getEnvFloat("TSPGA_CROSSOVER_RATE", 0.9254767404), "recombination gate probability")
		mu             = flag.Int("mu", getEnvInt("TSPGA_MU", 40), "population size (even)")
		lambda         = flag.Int("lambda", getEnvInt("TSPGA_LAMBDA", 60), "offspring pool size (even, > mu)")
		maxGenNoImprov = flag.Int("max-gen-no-improvement", getEnvInt("TSPGA_MAX_GEN_NO_IMPROVEMENT", 177), "stagnation cutoff")
		maxGen         = flag.Int("max-gen", getEnvInt("TSPGA_MAX_GEN", 408), "hard generation cap")
		tournamentK    = flag.Int("k", getEnvInt("TSPGA_TOURNAMENT_K", 13), "tournament sample size")
		showPath       = flag.Bool("show-path", false, "dump the tour after the report")
		verbose        = flag.Bool("verbose", false, "emit per-generation monitoring rows")
	)
	flag.StringVar(filename, "f", *filename, "shorthand for -filename")
	flag.IntVar(timeoutMs, "t", *timeoutMs, "shorthand for -timeout-ms")
	flag.Float64Var(mutationProb, "m", *mutationProb, "shorthand for -mutation-probability")
	flag.Float64Var(crossoverRate, "c", *crossoverRate, "shorthand for -crossover-rate")
	flag.IntVar(maxGenNoImprov, "N", *maxGenNoImprov, "shorthand for -max-gen-no-improvement")
	flag.IntVar(maxGen, "M", *maxGen, "shorthand for -max-gen")
	flag.BoolVar(showPath, "s", *showPath, "shorthand for -show-path")
	flag.Parse()

	if *filename == "" {
		fmt.Fprintln(os.Stderr, "tspga: -filename is required")
		return 1
	}

	inst, err := geo.ReadInstanceFile(*filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tspga:", err)
		return 1
	}

	dist, err := geo.NewMatrix(inst)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tspga:", err)
		return 1
	}

	logger := zap.NewNop()
	if *verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "tspga:", err)
			return 1
		}
	}
	defer logger.Sync()

	runID := uuid.New()
	logger.Info("run started", zap.String("run_id", runID.String()), zap.String("instance", *filename))

	params := tsp.DefaultParams(
		tsp.WithMutationProbability(*mutationProb),
		tsp.WithCrossoverRate(*crossoverRate),
		tsp.WithMu(*mu),
		tsp.WithLambda(*lambda),
		tsp.WithTournamentK(*tournamentK),
		tsp.WithMaxGenerationsWithoutImprovement(*maxGenNoImprov),
		tsp.WithMaxGenerations(*maxGen),
		tsp.WithLogger(logger),
	)

	solver, err := tsp.NewSolver(dist, params)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tspga:", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*timeoutMs)*time.Millisecond)
	defer cancel()

	start := time.Now()
	result, err := solver.RunWithContext(ctx)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tspga:", err)
		return 1
	}

	fmt.Printf("N: %d\n", inst.Dimension)
	fmt.Printf("program_time_ms: %d\n", elapsed.Milliseconds())
	fmt.Printf("was_interrupted: %t\n", result.WasInterrupted)
	fmt.Printf("solution_cost: %.9f\n", result.Cost)
	if *showPath {
		for _, city := range result.Tour {
			fmt.Println(city)
		}
	}
	return 0
}
