package genetic

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const (
	// MinNormalizedValue is the lower end of the range fitness values are normalized to
	MinNormalizedValue = 0.0
	// MaxNormalizedValue is the upper end of the range fitness values are normalized to
	MaxNormalizedValue = 100.0
)

type selectionFunc func(p *Population, rnd Random) ([]Chromosome, error)

type evolution struct {
	random        Random
	crossoverRate float64
	mutation      MutationType
	selection     map[SelectionType]selectionFunc
}

// Option configures an Engine
type Option func(e *evolution)

// WithCrossoverRate sets the probability that a selected pair is recombined
// instead of being copied unchanged. Defaults to 1.
func WithCrossoverRate(rate float64) Option {
	return func(e *evolution) {
		e.crossoverRate = rate
	}
}

// WithMutationType sets the gene level mutation. Defaults to RandomSymbol.
func WithMutationType(t MutationType) Option {
	return func(e *evolution) {
		e.mutation = t
	}
}

// NewEngine initialices carousel selection and the crossover/mutation steps
// drawing from rnd
func NewEngine(rnd Random, opts ...Option) Engine {
	e := &evolution{
		random:        rnd,
		crossoverRate: 1,
		mutation:      RandomSymbol,
		selection: map[SelectionType]selectionFunc{
			Carousel: SelectCarousel,
		},
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Crossover selects len(p) parents and recombines them pairwise into a new population
func (e *evolution) Crossover(p *Population, s SelectionType, c CrossoverType) (*Population, error) {
	homogeneous, err := p.IsHomogeneous()
	if err != nil {
		return nil, err
	}
	if homogeneous {
		return nil, ErrorHomogeneousPopulation
	}
	if !p.Evaluated() {
		return nil, fmt.Errorf("%w: population must be evaluated before selection", ErrorInvalidArgument)
	}
	if err := sameLength(p.chromosomes); err != nil {
		return nil, err
	}
	if _, ok := crossoverNames[c]; !ok {
		return nil, fmt.Errorf("%w: unknown crossover type %v", ErrorInvalidArgument, c)
	}
	if err := validateRate(e.crossoverRate); err != nil {
		return nil, err
	}
	selection, ok := e.selection[s]
	if !ok {
		return nil, fmt.Errorf("%w: unknown selection type %v", ErrorInvalidArgument, s)
	}

	candidates, err := selection(p, e.random)
	if err != nil {
		return nil, err
	}
	chromosomes, err := CrossoverCandidates(candidates, c, e.crossoverRate, e.random)
	if err != nil {
		return nil, err
	}

	return &Population{chromosomes: chromosomes}, nil
}

// Mutate applies the engine mutation to every chromosome
func (e *evolution) Mutate(p *Population, rate float64, alphabet string) (*Population, error) {
	if err := validateRate(rate); err != nil {
		return nil, err
	}
	mutate, err := Mutator(e.mutation)
	if err != nil {
		return nil, err
	}
	if err := mutable(p.chromosomes, e.mutation, alphabet); err != nil {
		return nil, err
	}

	chromosomes := make([]Chromosome, len(p.chromosomes))
	for i, c := range p.chromosomes {
		m, err := mutate(c, rate, alphabet, e.random)
		if err != nil {
			return nil, err
		}
		chromosomes[i] = m
	}

	return &Population{chromosomes: chromosomes}, nil
}

// sameLength rejects populations whose genomes can't be paired with each other
func sameLength(chromosomes []Chromosome) error {
	if len(chromosomes) == 0 {
		return nil
	}
	length := chromosomes[0].Len()
	if length == 0 {
		return fmt.Errorf("%w: chromosomes are empty", ErrorInvalidArgument)
	}
	for _, c := range chromosomes[1:] {
		if c.Len() != length {
			return fmt.Errorf("%w: chromosome lengths differ (%d != %d)", ErrorInvalidArgument, length, c.Len())
		}
	}

	return nil
}

// mutable checks every chromosome against the mutation before the first draw
func mutable(chromosomes []Chromosome, t MutationType, alphabet string) error {
	if alphabet == "" {
		return fmt.Errorf("%w: encoding alphabet is empty", ErrorInvalidArgument)
	}
	if t != BitFlip {
		return nil
	}
	for _, c := range chromosomes {
		if !isBinary(c.genome) {
			return fmt.Errorf("%w: genome %q is not binary", ErrorInvalidArgument, c.genome)
		}
	}

	return nil
}

// CrossoverCandidates recombines the candidates pairwise in order: (0,1), (2,3), ...
// With an odd number of candidates the last one is passed through unchanged.
func CrossoverCandidates(candidates []Chromosome, t CrossoverType, rate float64, rnd Random) ([]Chromosome, error) {
	if err := validateRate(rate); err != nil {
		return nil, err
	}
	result := make([]Chromosome, 0, len(candidates))

	for i := 0; i+1 < len(candidates); i += 2 {
		first, second := candidates[i], candidates[i+1]
		if rate < 1 && rnd.Float64() >= rate {
			result = append(result, first, second)
			continue
		}
		a, b, err := Crossover(first, second, t, rnd)
		if err != nil {
			return nil, err
		}
		result = append(result, a, b)
	}
	if len(candidates)%2 == 1 {
		result = append(result, candidates[len(candidates)-1])
	}

	return result, nil
}

// SelectCarousel samples len(p) chromosomes with replacement, each with a probability
// proportional to its normalized fitness value
func SelectCarousel(p *Population, rnd Random) ([]Chromosome, error) {
	if len(p.chromosomes) == 0 {
		return nil, ErrorEmptyPopulation
	}
	bounds := cumulative(NormalizeFitnessValues(p.chromosomes))
	sum := bounds[len(bounds)-1]

	selected := make([]Chromosome, len(p.chromosomes))
	for i := range selected {
		selected[i] = p.chromosomes[searchRange(bounds, RandomValue(rnd, 0, sum))]
	}

	return selected, nil
}

// NormalizeFitnessValues rescales the fitness values into [MinNormalizedValue, MaxNormalizedValue]
func NormalizeFitnessValues(chromosomes []Chromosome) []float64 {
	values := make([]float64, len(chromosomes))
	if len(values) == 0 {
		return values
	}
	for i, c := range chromosomes {
		values[i] = c.fitness
	}
	min, max := floats.Min(values), floats.Max(values)
	for i, v := range values {
		values[i] = Normalize(v, min, max, MinNormalizedValue, MaxNormalizedValue)
	}

	return values
}

// cumulative returns the running upper bound of each chromosome range
func cumulative(values []float64) []float64 {
	d := make([]float64, len(values))
	floats.CumSum(d, values)

	return d
}

// searchRange returns the first range whose upper bound reaches point
func searchRange(bounds []float64, point float64) int {
	idx := sort.SearchFloat64s(bounds, point)
	// Fix for floating point error
	if idx == len(bounds) {
		idx = len(bounds) - 1
	}

	return idx
}
