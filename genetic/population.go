package genetic

import (
	"fmt"
)

// Population is an ordered collection of chromosomes with the statistic of its last evaluation.
// Every transformation returns a new Population.
type Population struct {
	chromosomes []Chromosome
	statistic   Statistic
	best        Chromosome
	hasBest     bool
}

// NewPopulation builds a population from known chromosomes, keeping their order
func NewPopulation(chromosomes ...Chromosome) *Population {
	c := make([]Chromosome, len(chromosomes))
	copy(c, chromosomes)

	return &Population{chromosomes: c}
}

// GeneratePopulation creates size random chromosomes. A size of 0 gives an empty population.
func GeneratePopulation(size, length int, alphabet string, rnd Random) (*Population, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: population size can't be negative, got %d", ErrorInvalidArgument, size)
	}
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("%w: encoding alphabet is empty", ErrorInvalidArgument)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: chromosome length must be positive, got %d", ErrorInvalidArgument, length)
	}

	chromosomes := make([]Chromosome, size)
	for i := range chromosomes {
		c, err := Generate(length, alphabet, rnd)
		if err != nil {
			return nil, err
		}
		chromosomes[i] = c
	}

	return &Population{chromosomes: chromosomes}, nil
}

// Len is the number of chromosomes
func (p *Population) Len() int {
	return len(p.chromosomes)
}

// At returns the i-th chromosome
func (p *Population) At(i int) Chromosome {
	return p.chromosomes[i]
}

// Chromosomes returns a copy of the chromosomes in population order
func (p *Population) Chromosomes() []Chromosome {
	c := make([]Chromosome, len(p.chromosomes))
	copy(c, p.chromosomes)

	return c
}

// Statistic returns the statistic of the last evaluation, EmptyStatistic if there was none
func (p *Population) Statistic() Statistic {
	return p.statistic
}

// Best returns the chromosome with the highest fitness of the last evaluation.
// The first one encountered wins ties.
func (p *Population) Best() (Chromosome, bool) {
	return p.best, p.hasBest
}

// Evaluated reports whether every chromosome carries a fitness value
func (p *Population) Evaluated() bool {
	for _, c := range p.chromosomes {
		if !c.evaluated {
			return false
		}
	}

	return true
}

// Evaluate calculates the fitness value of every chromosome and returns the evaluated population
func (p *Population) Evaluate(fn FitnessFunction) *Population {
	result := &Population{
		chromosomes: make([]Chromosome, len(p.chromosomes)),
	}
	for i, c := range p.chromosomes {
		evaluated := c.CalculateFitnessValue(fn)
		result.chromosomes[i] = evaluated
		if !result.hasBest || result.best.fitness < evaluated.fitness {
			result.best = evaluated
			result.hasBest = true
		}
	}
	result.statistic = computeStatistic(result.chromosomes)

	return result
}

// IsHomogeneous reports whether every chromosome has the genome of the first one.
// The question has no answer for an empty population.
func (p *Population) IsHomogeneous() (bool, error) {
	if len(p.chromosomes) == 0 {
		return false, ErrorEmptyPopulation
	}
	pattern := p.chromosomes[0]
	for _, c := range p.chromosomes[1:] {
		if !pattern.Equal(c) {
			return false, nil
		}
	}

	return true, nil
}

// HomogeneityRatio is the share of chromosomes carrying the most common genome
func (p *Population) HomogeneityRatio() (float64, error) {
	if len(p.chromosomes) == 0 {
		return 0, ErrorEmptyPopulation
	}
	counts := make(map[string]int, len(p.chromosomes))
	var most int
	for _, c := range p.chromosomes {
		counts[c.Key()]++
		if counts[c.Key()] > most {
			most = counts[c.Key()]
		}
	}

	return float64(most) / float64(len(p.chromosomes)), nil
}

func (p *Population) String() string {
	return fmt.Sprintf("Population[chromosomes=%v, statistic=%v]", p.chromosomes, p.statistic)
}
