package genetic

import (
	"fmt"
	"unicode/utf8"
)

// Chromosome is a fixed length genome over an alphabet together with its fitness value.
// Values are immutable, every operator returns a new Chromosome.
type Chromosome struct {
	genome    string
	fitness   float64
	evaluated bool
}

// NewChromosome wraps a known genome. The fitness value is not calculated yet.
func NewChromosome(genome string) Chromosome {
	return Chromosome{genome: genome}
}

// Generate draws length symbols uniformly from the alphabet. Repeated symbols in
// the alphabet are drawn proportionally more often.
func Generate(length int, alphabet string, rnd Random) (Chromosome, error) {
	if length <= 0 {
		return Chromosome{}, fmt.Errorf("%w: chromosome length must be positive, got %d", ErrorInvalidArgument, length)
	}
	symbols := []rune(alphabet)
	if len(symbols) == 0 {
		return Chromosome{}, fmt.Errorf("%w: encoding alphabet is empty", ErrorInvalidArgument)
	}

	genome := make([]rune, length)
	for i := range genome {
		genome[i] = symbols[rnd.Intn(len(symbols))]
	}

	return NewChromosome(string(genome)), nil
}

// Genome returns the symbol sequence
func (c Chromosome) Genome() string {
	return c.genome
}

// Len is the number of genes
func (c Chromosome) Len() int {
	return utf8.RuneCountInString(c.genome)
}

// Fitness returns the calculated fitness value, 0 until Evaluated
func (c Chromosome) Fitness() float64 {
	return c.fitness
}

// Evaluated reports whether the fitness value has been calculated
func (c Chromosome) Evaluated() bool {
	return c.evaluated
}

// CalculateFitnessValue returns a copy of the chromosome carrying fn(genome)
func (c Chromosome) CalculateFitnessValue(fn FitnessFunction) Chromosome {
	return Chromosome{
		genome:    c.genome,
		fitness:   fn(c.genome),
		evaluated: true,
	}
}

// Equal compares genomes only, the fitness value is ignored
func (c Chromosome) Equal(o Chromosome) bool {
	return c.genome == o.genome
}

// Key identifies the chromosome in maps consistently with Equal
func (c Chromosome) Key() string {
	return c.genome
}

func (c Chromosome) String() string {
	if !c.evaluated {
		return fmt.Sprintf("Chromosome[genome=%s]", c.genome)
	}
	return fmt.Sprintf("Chromosome[genome=%s, fitness=%v]", c.genome, c.fitness)
}
