package genetic

import (
	"fmt"
	"strings"
)

// Engine is an object in charge of performing the population level steps of a genetic algorithm
type Engine interface {
	Crossover(p *Population, s SelectionType, c CrossoverType) (*Population, error)
	Mutate(p *Population, rate float64, alphabet string) (*Population, error)
}

// FitnessFunction scores a genome. No assumption is made about the range or the sign of the result.
type FitnessFunction func(genome string) float64

// SelectionType chooses how the parents of the next generation are sampled
type SelectionType int

// CrossoverType chooses how two parents are recombined
type CrossoverType int

// MutationType chooses how a single gene is perturbed
type MutationType int

const (
	// Carousel is fitness proportionate (roulette wheel) selection
	Carousel SelectionType = iota + 1
)

const (
	// OnePoint recombines the parents around a single split point
	OnePoint CrossoverType = iota + 1
	// TwoPoint swaps the segment between two split points
	TwoPoint
)

const (
	// RandomSymbol redraws a selected gene from the alphabet
	RandomSymbol MutationType = iota + 1
	// BitFlip flips a selected binary gene to its opposite
	BitFlip
)

var (
	selectionNames = map[SelectionType]string{Carousel: "CAROUSEL"}
	crossoverNames = map[CrossoverType]string{OnePoint: "ONE_POINT", TwoPoint: "TWO_POINT"}
	mutationNames  = map[MutationType]string{RandomSymbol: "RANDOM_SYMBOL", BitFlip: "BIT_FLIP"}
)

func (s SelectionType) String() string {
	if n, ok := selectionNames[s]; ok {
		return n
	}
	return fmt.Sprintf("SelectionType(%d)", int(s))
}

// UnmarshalText parses the selection name used in configuration files
func (s *SelectionType) UnmarshalText(text []byte) error {
	for k, v := range selectionNames {
		if strings.EqualFold(v, string(text)) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("%w: unknown selection type %q", ErrorInvalidArgument, text)
}

// MarshalText returns the configuration name of the selection type
func (s SelectionType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (c CrossoverType) String() string {
	if n, ok := crossoverNames[c]; ok {
		return n
	}
	return fmt.Sprintf("CrossoverType(%d)", int(c))
}

// UnmarshalText parses the crossover name used in configuration files
func (c *CrossoverType) UnmarshalText(text []byte) error {
	for k, v := range crossoverNames {
		if strings.EqualFold(v, string(text)) {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("%w: unknown crossover type %q", ErrorInvalidArgument, text)
}

// MarshalText returns the configuration name of the crossover type
func (c CrossoverType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (m MutationType) String() string {
	if n, ok := mutationNames[m]; ok {
		return n
	}
	return fmt.Sprintf("MutationType(%d)", int(m))
}

// UnmarshalText parses the mutation name used in configuration files
func (m *MutationType) UnmarshalText(text []byte) error {
	for k, v := range mutationNames {
		if strings.EqualFold(v, string(text)) {
			*m = k
			return nil
		}
	}
	return fmt.Errorf("%w: unknown mutation type %q", ErrorInvalidArgument, text)
}

// MarshalText returns the configuration name of the mutation type
func (m MutationType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
