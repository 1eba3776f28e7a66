package genetic

import (
	"fmt"
	"strings"
)

// BinaryAlphabet is the alphabet of binary genomes
const BinaryAlphabet = "01"

// GenerateBinary draws a random binary genome. Binary chromosomes need at least two genes.
func GenerateBinary(length int, rnd Random) (Chromosome, error) {
	if length <= 1 {
		return Chromosome{}, fmt.Errorf("%w: minimum length of binary chromosome is 2, got %d", ErrorInvalidArgument, length)
	}

	return Generate(length, BinaryAlphabet, rnd)
}

// FlipMutate flips every selected gene of a binary genome to its opposite value
func FlipMutate(c Chromosome, rate float64, rnd Random) (Chromosome, error) {
	if err := validateRate(rate); err != nil {
		return Chromosome{}, err
	}
	if !isBinary(c.genome) {
		return Chromosome{}, fmt.Errorf("%w: genome %q is not binary", ErrorInvalidArgument, c.genome)
	}

	genome := []byte(c.genome)
	for i := range genome {
		if rnd.Float64() < rate {
			if genome[i] == '1' {
				genome[i] = '0'
			} else {
				genome[i] = '1'
			}
		}
	}

	return NewChromosome(string(genome)), nil
}

func isBinary(genome string) bool {
	return strings.Trim(genome, BinaryAlphabet) == ""
}
