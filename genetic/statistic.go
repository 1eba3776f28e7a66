package genetic

import "fmt"

// Statistic aggregates the fitness values of an evaluated population
type Statistic struct {
	Min   float64
	Avg   float64
	Max   float64
	Count int
}

// EmptyStatistic stands for "not calculated": the population was not evaluated or has no chromosomes
var EmptyStatistic = Statistic{}

// Defined reports whether the statistic was computed over at least one value
func (s Statistic) Defined() bool {
	return s.Count > 0
}

func (s Statistic) String() string {
	if !s.Defined() {
		return "Statistic[empty]"
	}
	return fmt.Sprintf("Statistic[min=%v, avg=%v, max=%v]", s.Min, s.Avg, s.Max)
}

// computeStatistic is a single pass min/avg/max reduction
func computeStatistic(chromosomes []Chromosome) Statistic {
	if len(chromosomes) == 0 {
		return EmptyStatistic
	}
	s := Statistic{
		Min:   chromosomes[0].fitness,
		Max:   chromosomes[0].fitness,
		Count: len(chromosomes),
	}
	var sum float64
	for _, c := range chromosomes {
		if c.fitness < s.Min {
			s.Min = c.fitness
		}
		if c.fitness > s.Max {
			s.Max = c.fitness
		}
		sum += c.fitness
	}
	s.Avg = sum / float64(len(chromosomes))

	return s
}
