package genetic

import (
	"fmt"
)

// Crossover recombines two parents with the given operator and returns exactly two offspring
func Crossover(a, b Chromosome, t CrossoverType, rnd Random) (Chromosome, Chromosome, error) {
	switch t {
	case OnePoint:
		return OnePointCrossover(a, b, rnd)
	case TwoPoint:
		return TwoPointCrossover(a, b, rnd)
	default:
		return Chromosome{}, Chromosome{}, fmt.Errorf("%w: unknown crossover type %v", ErrorInvalidArgument, t)
	}
}

// OnePointCrossover draws the split point uniformly from [0, length)
func OnePointCrossover(a, b Chromosome, rnd Random) (Chromosome, Chromosome, error) {
	ga, gb, err := parents(a, b)
	if err != nil {
		return Chromosome{}, Chromosome{}, err
	}
	p := rnd.Intn(len(ga))

	return onePoint(ga, gb, p)
}

// OnePointCrossoverAt splits both parents at p:
// the first offspring is a[:p]+b[p:], the second b[:p]+a[p:].
// Applying it again to the offspring with the same p gives the parents back.
func OnePointCrossoverAt(a, b Chromosome, p int) (Chromosome, Chromosome, error) {
	ga, gb, err := parents(a, b)
	if err != nil {
		return Chromosome{}, Chromosome{}, err
	}

	return onePoint(ga, gb, p)
}

func onePoint(a, b []rune, p int) (Chromosome, Chromosome, error) {
	if p < 0 || p > len(a) {
		return Chromosome{}, Chromosome{}, fmt.Errorf("%w: split point %d outside [0, %d]", ErrorInvalidArgument, p, len(a))
	}
	first := concat(a[:p], b[p:])
	second := concat(b[:p], a[p:])

	return NewChromosome(first), NewChromosome(second), nil
}

// TwoPointCrossover draws two independent split points uniformly from [0, length)
func TwoPointCrossover(a, b Chromosome, rnd Random) (Chromosome, Chromosome, error) {
	ga, gb, err := parents(a, b)
	if err != nil {
		return Chromosome{}, Chromosome{}, err
	}
	p1 := rnd.Intn(len(ga))
	p2 := rnd.Intn(len(ga))

	return twoPoint(ga, gb, p1, p2)
}

// TwoPointCrossoverAt swaps the segment between the split points, which are sorted first:
// the first offspring is a[:p1]+b[p1:p2]+a[p2:], the second b[:p1]+a[p1:p2]+b[p2:].
func TwoPointCrossoverAt(a, b Chromosome, p1, p2 int) (Chromosome, Chromosome, error) {
	ga, gb, err := parents(a, b)
	if err != nil {
		return Chromosome{}, Chromosome{}, err
	}

	return twoPoint(ga, gb, p1, p2)
}

func twoPoint(a, b []rune, p1, p2 int) (Chromosome, Chromosome, error) {
	if p1 > p2 {
		p1, p2 = p2, p1
	}
	if p1 < 0 || p2 > len(a) {
		return Chromosome{}, Chromosome{}, fmt.Errorf("%w: split points [%d, %d] outside [0, %d]", ErrorInvalidArgument, p1, p2, len(a))
	}
	first := concat(a[:p1], b[p1:p2], a[p2:])
	second := concat(b[:p1], a[p1:p2], b[p2:])

	return NewChromosome(first), NewChromosome(second), nil
}

func parents(a, b Chromosome) ([]rune, []rune, error) {
	ga, gb := []rune(a.genome), []rune(b.genome)
	if len(ga) != len(gb) {
		return nil, nil, fmt.Errorf("%w: chromosome lengths differ (%d != %d)", ErrorInvalidArgument, len(ga), len(gb))
	}
	if len(ga) == 0 {
		return nil, nil, fmt.Errorf("%w: chromosomes are empty", ErrorInvalidArgument)
	}

	return ga, gb, nil
}

func concat(parts ...[]rune) string {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]rune, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}

	return string(out)
}
