package parameters

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/dariuszzbyrad/jgenetics/genetic"
)

// Parameters holds everything a run needs besides the fitness function
type Parameters struct {
	// SizeOfChromosome is the number of genes of every chromosome
	SizeOfChromosome int `toml:"size_of_chromosome"`
	// PopulationSize is the number of chromosomes in each population
	PopulationSize int `toml:"population_size"`
	// MutationRate is the probability of mutating each gene
	MutationRate float64 `toml:"mutation_rate"`
	// CrossoverRate is the probability of recombining a selected pair
	CrossoverRate float64 `toml:"crossover_rate"`
	// EncodingAlphabet is the set of gene values, e.g. "01" or "ABCDEFGH"
	EncodingAlphabet string `toml:"encoding_alphabet"`

	SelectionType genetic.SelectionType `toml:"selection_type"`
	CrossoverType genetic.CrossoverType `toml:"crossover_type"`
	MutationType  genetic.MutationType  `toml:"mutation_type"`

	// MaxIteration bounds the number of generations
	MaxIteration int `toml:"max_iteration"`
	// PercentHomogeneous stops the run once this share of the population carries one genome
	PercentHomogeneous float64 `toml:"percent_homogeneous"`
	// Seed of the random source, 0 draws from crypto/rand
	Seed int64 `toml:"seed"`
	// SaveReport writes the text report after each iteration
	SaveReport bool `toml:"save_report"`
}

// Default returns the parameters of the knapsack demo
func Default() *Parameters {
	return &Parameters{
		SizeOfChromosome:   7,
		PopulationSize:     9,
		MutationRate:       0.1,
		CrossoverRate:      1,
		EncodingAlphabet:   "10",
		SelectionType:      genetic.Carousel,
		CrossoverType:      genetic.TwoPoint,
		MutationType:       genetic.RandomSymbol,
		MaxIteration:       40,
		PercentHomogeneous: 1,
	}
}

// Load decodes a TOML file on top of Default
func Load(path string) (*Parameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads TOML on top of Default and validates the result
func Decode(r io.Reader) (*Parameters, error) {
	p := Default()
	if _, err := toml.NewDecoder(r).Decode(p); err != nil {
		return nil, fmt.Errorf("%w: %v", genetic.ErrorInvalidArgument, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks every field, returning the first malformed one
func (p *Parameters) Validate() error {
	switch {
	case p.PopulationSize <= 0:
		return invalid("population size must be positive, got %d", p.PopulationSize)
	case p.SizeOfChromosome <= 0:
		return invalid("size of chromosome must be positive, got %d", p.SizeOfChromosome)
	case utf8.RuneCountInString(p.EncodingAlphabet) == 0:
		return invalid("encoding alphabet is empty")
	case !genetic.IsPointInRange(p.MutationRate, 0, 1):
		return invalid("mutation rate %v outside [0, 1]", p.MutationRate)
	case !genetic.IsPointInRange(p.CrossoverRate, 0, 1):
		return invalid("crossover rate %v outside [0, 1]", p.CrossoverRate)
	case p.SelectionType != genetic.Carousel:
		return invalid("unsupported selection type %v", p.SelectionType)
	case p.CrossoverType != genetic.OnePoint && p.CrossoverType != genetic.TwoPoint:
		return invalid("unsupported crossover type %v", p.CrossoverType)
	case p.MutationType != genetic.RandomSymbol && p.MutationType != genetic.BitFlip:
		return invalid("unsupported mutation type %v", p.MutationType)
	case p.MaxIteration < 0:
		return invalid("max iteration can't be negative, got %d", p.MaxIteration)
	case p.PercentHomogeneous <= 0 || p.PercentHomogeneous > 1:
		return invalid("percent homogeneous %v outside (0, 1]", p.PercentHomogeneous)
	}
	if p.MutationType == genetic.BitFlip {
		if p.SizeOfChromosome <= 1 {
			return invalid("binary chromosomes need at least 2 genes, got %d", p.SizeOfChromosome)
		}
		for _, r := range p.EncodingAlphabet {
			if r != '0' && r != '1' {
				return invalid("bit flip mutation needs a binary alphabet, got %q", p.EncodingAlphabet)
			}
		}
	}

	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{genetic.ErrorInvalidArgument}, args...)...)
}
