// Package algorithm drives the genetic engine: it evolves a population generation after
// generation until the iteration budget is spent or the population converged, keeping the
// best chromosome seen.
package algorithm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dariuszzbyrad/jgenetics/entities"
	"github.com/dariuszzbyrad/jgenetics/genetic"
	"github.com/dariuszzbyrad/jgenetics/logger"
	"github.com/dariuszzbyrad/jgenetics/parameters"
	"github.com/dariuszzbyrad/jgenetics/report"
)

// Algorithm runs the generational loop for one set of parameters
type Algorithm struct {
	params   *parameters.Parameters
	random   genetic.Random
	engine   genetic.Engine
	reporter report.Reporter
	logger   *slog.Logger
	initial  *genetic.Population
	id       string
}

// Option configures an Algorithm
type Option func(a *Algorithm)

// WithRandom replaces the source derived from the seed parameter
func WithRandom(rnd genetic.Random) Option {
	return func(a *Algorithm) {
		a.random = rnd
	}
}

// WithEngine replaces the carousel engine built from the parameters
func WithEngine(e genetic.Engine) Option {
	return func(a *Algorithm) {
		a.engine = e
	}
}

// WithReporter receives the statistic of every iteration
func WithReporter(r report.Reporter) Option {
	return func(a *Algorithm) {
		a.reporter = r
	}
}

// WithLogger sets the run logger
func WithLogger(l *slog.Logger) Option {
	return func(a *Algorithm) {
		a.logger = l
	}
}

// WithInitialPopulation starts from known chromosomes instead of a random population
func WithInitialPopulation(p *genetic.Population) Option {
	return func(a *Algorithm) {
		a.initial = p
	}
}

// WithID names the run, a random UUID is used otherwise
func WithID(id string) Option {
	return func(a *Algorithm) {
		a.id = id
	}
}

// Result is the outcome of Run
type Result struct {
	ID         string
	Best       genetic.Chromosome
	Iterations int
	// Converged is set when the run stopped on the homogeneity threshold
	Converged  bool
	Population *genetic.Population
	// Statistics holds one entry per evaluated population, the initial one included
	Statistics []genetic.Statistic
	// BestHistory is the best fitness seen up to each iteration
	BestHistory []float64
}

// Run converts the result into its stored form
func (r *Result) Run(now time.Time) *entities.Run {
	population := make([]string, 0, r.Population.Len())
	for _, c := range r.Population.Chromosomes() {
		population = append(population, c.Genome())
	}

	return &entities.Run{
		ID:           r.ID,
		Genome:       r.Best.Genome(),
		Fitness:      r.Best.Fitness(),
		Iterations:   r.Iterations,
		Converged:    r.Converged,
		Population:   population,
		CreationTime: now.UTC().Format(time.RFC3339),
	}
}

// New validates the parameters and prepares a run
func New(p *parameters.Parameters, opts ...Option) (*Algorithm, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: missing parameters", genetic.ErrorInvalidArgument)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	a := &Algorithm{
		params:   p,
		reporter: report.Nop,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.random == nil {
		if p.Seed != 0 {
			a.random = genetic.NewRandom(p.Seed)
		} else {
			a.random = genetic.NewCryptoRandom()
		}
	}
	if a.engine == nil {
		a.engine = genetic.NewEngine(a.random,
			genetic.WithCrossoverRate(p.CrossoverRate),
			genetic.WithMutationType(p.MutationType),
		)
	}
	if a.initial != nil {
		if a.initial.Len() == 0 {
			return nil, genetic.ErrorEmptyPopulation
		}
		for _, c := range a.initial.Chromosomes() {
			if c.Len() != p.SizeOfChromosome {
				return nil, fmt.Errorf("%w: initial chromosome %q doesn't have %d genes", genetic.ErrorInvalidArgument, c.Genome(), p.SizeOfChromosome)
			}
		}
	}

	return a, nil
}

// ShouldStop is the termination policy of Run: stop as soon as either limit is reached,
// the iteration budget or the share of the population carrying a single genome.
func ShouldStop(iteration, maxIteration int, homogeneity, threshold float64) bool {
	return iteration >= maxIteration || homogeneity >= threshold
}

// Run evolves the population until ShouldStop and returns the best chromosome seen
func (a *Algorithm) Run(ctx context.Context, fn genetic.FitnessFunction) (*Result, error) {
	result := &Result{ID: a.id}
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	log := a.logger.With("run", result.ID)

	population := a.initial
	if population == nil {
		var err error
		population, err = genetic.GeneratePopulation(a.params.PopulationSize, a.params.SizeOfChromosome, a.params.EncodingAlphabet, a.random)
		if err != nil {
			return nil, a.fail(result.ID, 0, "unable to generate the population", err)
		}
	}
	population = population.Evaluate(fn)
	result.Best, _ = population.Best()
	a.record(log, result, 0, population)

	iteration := 0
	for {
		homogeneity, err := population.HomogeneityRatio()
		if err != nil {
			return nil, a.fail(result.ID, iteration, "unable to check homogeneity", err)
		}
		if ShouldStop(iteration, a.params.MaxIteration, homogeneity, a.params.PercentHomogeneous) {
			result.Converged = homogeneity >= a.params.PercentHomogeneous
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, a.fail(result.ID, iteration, "run cancelled", err)
		}

		iteration++
		population, err = a.engine.Crossover(population, a.params.SelectionType, a.params.CrossoverType)
		if err != nil {
			return nil, a.fail(result.ID, iteration, "crossover failed", err)
		}
		population, err = a.engine.Mutate(population, a.params.MutationRate, a.params.EncodingAlphabet)
		if err != nil {
			return nil, a.fail(result.ID, iteration, "mutation failed", err)
		}
		population = population.Evaluate(fn)

		if best, ok := population.Best(); ok && best.Fitness() > result.Best.Fitness() {
			result.Best = best
		}
		a.record(log, result, iteration, population)
	}

	result.Iterations = iteration
	result.Population = population
	log.Info("the best chromosome",
		"genome", result.Best.Genome(),
		"fitness", result.Best.Fitness(),
		"iterations", iteration,
		"converged", result.Converged,
	)

	return result, nil
}

func (a *Algorithm) record(log *slog.Logger, result *Result, iteration int, p *genetic.Population) {
	s := p.Statistic()
	result.Statistics = append(result.Statistics, s)
	result.BestHistory = append(result.BestHistory, result.Best.Fitness())

	log.Debug("iteration",
		"iteration", iteration,
		"min", s.Min,
		"avg", s.Avg,
		"max", s.Max,
		"best", result.Best.Genome(),
	)
	if err := a.reporter.Update(iteration, s); err != nil {
		log.Warn("unable to report iteration", "iteration", iteration, "error", err)
	}
}

func (a *Algorithm) fail(run string, iteration int, message string, err error) error {
	return &logger.Error{
		Level:      "error",
		Err:        err,
		Parameters: a.params,
		Run:        run,
		Iteration:  iteration,
		Message:    message,
	}
}
