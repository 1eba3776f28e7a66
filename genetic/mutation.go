package genetic

import (
	"fmt"
)

// Mutate redraws every gene from the alphabet with probability rate.
// The new symbol may be the same as the old one.
func Mutate(c Chromosome, rate float64, alphabet string, rnd Random) (Chromosome, error) {
	if err := validateRate(rate); err != nil {
		return Chromosome{}, err
	}
	symbols := []rune(alphabet)
	if len(symbols) == 0 {
		return Chromosome{}, fmt.Errorf("%w: encoding alphabet is empty", ErrorInvalidArgument)
	}

	genome := []rune(c.genome)
	for i := range genome {
		if rnd.Float64() < rate {
			genome[i] = symbols[rnd.Intn(len(symbols))]
		}
	}

	return NewChromosome(string(genome)), nil
}

// Mutator returns the chromosome level operator for t
func Mutator(t MutationType) (func(c Chromosome, rate float64, alphabet string, rnd Random) (Chromosome, error), error) {
	switch t {
	case RandomSymbol:
		return Mutate, nil
	case BitFlip:
		return func(c Chromosome, rate float64, _ string, rnd Random) (Chromosome, error) {
			return FlipMutate(c, rate, rnd)
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown mutation type %v", ErrorInvalidArgument, t)
	}
}

func validateRate(rate float64) error {
	if !IsPointInRange(rate, 0, 1) {
		return fmt.Errorf("%w: rate %v outside [0, 1]", ErrorInvalidArgument, rate)
	}

	return nil
}
