package genetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func onesRatio(genome string) float64 {
	return numberOfOnes(genome) / float64(len(genome))
}

func evaluatedPopulation(genomes ...string) *Population {
	chromosomes := make([]Chromosome, len(genomes))
	for i, g := range genomes {
		chromosomes[i] = NewChromosome(g)
	}
	return NewPopulation(chromosomes...).Evaluate(onesRatio)
}

func withFitness(values ...float64) []Chromosome {
	chromosomes := make([]Chromosome, len(values))
	for i, v := range values {
		chromosomes[i] = Chromosome{genome: "01", fitness: v, evaluated: true}
	}
	return chromosomes
}

func TestNormalizeFitnessValues(t *testing.T) {
	t.Run("Normalization fitness values", func(t *testing.T) {
		assert := assert.New(t)
		values := NormalizeFitnessValues(withFitness(-3.21, -2.92, 10))
		require.Len(t, values, 3)
		assert.InDelta(0, values[0], 0.01)
		assert.InDelta(2.2, values[1], 0.01)
		assert.InDelta(100, values[2], 0.01)
	})

	t.Run("Equal fitness values", func(t *testing.T) {
		assert.Equal(t, []float64{50, 50, 50}, NormalizeFitnessValues(withFitness(4, 4, 4)))
	})

	t.Run("No chromosomes", func(t *testing.T) {
		assert.Empty(t, NormalizeFitnessValues(nil))
	})
}

func TestSelectCarousel(t *testing.T) {
	assert := assert.New(t)
	// normalized values 0, 25, 100: ranges [0,0] [0,25] (25,125]
	p := NewPopulation(withFitness(1, 2, 5)...)
	p.chromosomes[0].genome = "A"
	p.chromosomes[1].genome = "B"
	p.chromosomes[2].genome = "C"

	m := &mockRandom{}
	m.On("Float64").Return(0.1).Once()
	m.On("Float64").Return(0.5).Once()
	m.On("Float64").Return(0.0).Once()

	selected, err := SelectCarousel(p, m)
	require.NoError(t, err)
	require.Len(t, selected, 3)
	assert.Equal("B", selected[0].Genome())
	assert.Equal("C", selected[1].Genome())
	assert.Equal("A", selected[2].Genome())
	m.AssertExpectations(t)

	_, err = SelectCarousel(NewPopulation(), m)
	assert.ErrorIs(err, ErrorEmptyPopulation)
}

func TestSelectCarouselIsProportional(t *testing.T) {
	p := NewPopulation(withFitness(0, 1, 3)...)
	p.chromosomes[0].genome = "A"
	p.chromosomes[1].genome = "B"
	p.chromosomes[2].genome = "C"
	rnd := NewRandom(99)
	counts := map[string]int{}

	for i := 0; i < 2000; i++ {
		selected, err := SelectCarousel(p, rnd)
		require.NoError(t, err)
		for _, c := range selected {
			counts[c.Genome()]++
		}
	}
	// weights 0, 33.3, 100
	assert.Equal(t, 0, counts["A"])
	ratio := float64(counts["C"]) / float64(counts["B"])
	assert.InDelta(t, 3, ratio, 0.3)
}

func TestCrossoverCandidates(t *testing.T) {
	assert := assert.New(t)
	candidates := []Chromosome{
		NewChromosome("AAAA"),
		NewChromosome("BBBB"),
		NewChromosome("CCCC"),
		NewChromosome("DDDD"),
		NewChromosome("EEEE"),
	}

	m := &mockRandom{}
	m.On("Intn", 4).Return(1).Once()
	m.On("Intn", 4).Return(3).Once()

	result, err := CrossoverCandidates(candidates, OnePoint, 1, m)
	require.NoError(t, err)
	genomes := make([]string, len(result))
	for i, c := range result {
		genomes[i] = c.Genome()
	}
	assert.Equal([]string{"ABBB", "BAAA", "CCCD", "DDDC", "EEEE"}, genomes)
	m.AssertExpectations(t)
}

func TestCrossoverCandidatesRate(t *testing.T) {
	assert := assert.New(t)
	candidates := []Chromosome{NewChromosome("AAAA"), NewChromosome("BBBB"), NewChromosome("CCCC"), NewChromosome("DDDD")}

	m := &mockRandom{}
	m.On("Float64").Return(0.7).Once()
	m.On("Float64").Return(0.2).Once()
	m.On("Intn", 4).Return(2).Once()

	result, err := CrossoverCandidates(candidates, OnePoint, 0.5, m)
	require.NoError(t, err)
	require.Len(t, result, 4)
	assert.Equal("AAAA", result[0].Genome())
	assert.Equal("BBBB", result[1].Genome())
	assert.Equal("CCDD", result[2].Genome())
	assert.Equal("DDCC", result[3].Genome())
	m.AssertExpectations(t)

	_, err = CrossoverCandidates(candidates, OnePoint, 1.5, m)
	assert.ErrorIs(err, ErrorInvalidArgument)
}

func TestEngineCrossover(t *testing.T) {
	t.Run("New population has the same size", func(t *testing.T) {
		assert := assert.New(t)
		engine := NewEngine(NewRandom(5))
		p := evaluatedPopulation("10010", "01110", "00000")
		for _, c := range []CrossoverType{OnePoint, TwoPoint} {
			next, err := engine.Crossover(p, Carousel, c)
			require.NoError(t, err)
			assert.Equal(p.Len(), next.Len())
			for _, ch := range next.Chromosomes() {
				assert.Equal(5, ch.Len())
				assert.True(inAlphabet(ch.Genome(), "01"))
			}
			assert.False(next.Statistic().Defined())
		}
	})

	t.Run("Homogeneous population", func(t *testing.T) {
		assert := assert.New(t)
		m := &mockRandom{}
		engine := NewEngine(m)
		_, err := engine.Crossover(evaluatedPopulation("101", "101"), Carousel, OnePoint)
		assert.Equal(ErrorHomogeneousPopulation, err)
		m.AssertNotCalled(t, "Float64")
	})

	t.Run("Empty population", func(t *testing.T) {
		assert := assert.New(t)
		engine := NewEngine(NewRandom(5))
		_, err := engine.Crossover(NewPopulation(), Carousel, OnePoint)
		assert.Equal(ErrorEmptyPopulation, err)
	})

	t.Run("Population not evaluated", func(t *testing.T) {
		assert := assert.New(t)
		engine := NewEngine(NewRandom(5))
		_, err := engine.Crossover(NewPopulation(NewChromosome("01"), NewChromosome("10")), Carousel, OnePoint)
		assert.ErrorIs(err, ErrorInvalidArgument)
	})

	t.Run("Unknown operators", func(t *testing.T) {
		assert := assert.New(t)
		m := &mockRandom{}
		engine := NewEngine(m)
		p := evaluatedPopulation("01", "10")
		_, err := engine.Crossover(p, SelectionType(0), OnePoint)
		assert.ErrorIs(err, ErrorInvalidArgument)
		_, err = engine.Crossover(p, Carousel, CrossoverType(0))
		assert.ErrorIs(err, ErrorInvalidArgument)
		_, err = NewEngine(m, WithCrossoverRate(-1)).Crossover(p, Carousel, OnePoint)
		assert.ErrorIs(err, ErrorInvalidArgument)
		m.AssertNotCalled(t, "Float64")
		m.AssertNotCalled(t, "Intn", mock.Anything)
	})
}

func TestEngineMutate(t *testing.T) {
	p := evaluatedPopulation("0000", "1111")

	t.Run("Random symbol", func(t *testing.T) {
		assert := assert.New(t)
		next, err := NewEngine(NewRandom(1)).Mutate(p, 1, "x")
		require.NoError(t, err)
		assert.Equal("xxxx", next.At(0).Genome())
		assert.Equal("xxxx", next.At(1).Genome())
		assert.Equal("0000", p.At(0).Genome())
	})

	t.Run("Bit flip", func(t *testing.T) {
		assert := assert.New(t)
		next, err := NewEngine(NewRandom(1), WithMutationType(BitFlip)).Mutate(p, 1, BinaryAlphabet)
		require.NoError(t, err)
		assert.Equal("1111", next.At(0).Genome())
		assert.Equal("0000", next.At(1).Genome())
	})

	t.Run("Rate zero", func(t *testing.T) {
		assert := assert.New(t)
		next, err := NewEngine(NewRandom(1)).Mutate(p, 0, "01")
		require.NoError(t, err)
		assert.Equal("0000", next.At(0).Genome())
		assert.False(next.At(0).Evaluated())
	})

	t.Run("Invalid rate", func(t *testing.T) {
		assert := assert.New(t)
		_, err := NewEngine(NewRandom(1)).Mutate(p, 1.01, "01")
		assert.ErrorIs(err, ErrorInvalidArgument)
	})

	t.Run("Unknown mutation", func(t *testing.T) {
		assert := assert.New(t)
		_, err := NewEngine(NewRandom(1), WithMutationType(MutationType(7))).Mutate(p, 0.5, "01")
		assert.ErrorIs(err, ErrorInvalidArgument)
	})
}

// countingRandom counts the draws made through it
type countingRandom struct {
	Random
	draws int
}

func (c *countingRandom) Intn(n int) int {
	c.draws++
	return c.Random.Intn(n)
}

func (c *countingRandom) Float64() float64 {
	c.draws++
	return c.Random.Float64()
}

func TestEngineRejectsBeforeDrawing(t *testing.T) {
	cases := []struct {
		Name string
		Run  func(rnd Random) error
	}{
		{
			Name: "Bit flip on a non binary genome",
			Run: func(rnd Random) error {
				_, err := NewEngine(rnd, WithMutationType(BitFlip)).Mutate(NewPopulation(NewChromosome("0101"), NewChromosome("01a1")), 0.5, BinaryAlphabet)
				return err
			},
		},
		{
			Name: "Empty alphabet",
			Run: func(rnd Random) error {
				_, err := NewEngine(rnd).Mutate(NewPopulation(NewChromosome("0101"), NewChromosome("0111")), 0.5, "")
				return err
			},
		},
		{
			Name: "Empty alphabet and empty population",
			Run: func(rnd Random) error {
				_, err := NewEngine(rnd).Mutate(NewPopulation(), 0.5, "")
				return err
			},
		},
		{
			Name: "Parents of different lengths",
			Run: func(rnd Random) error {
				_, err := NewEngine(rnd).Crossover(evaluatedPopulation("0101", "0111", "011"), Carousel, OnePoint)
				return err
			},
		},
		{
			Name: "Empty genomes",
			Run: func(rnd Random) error {
				empty := Chromosome{genome: "", fitness: 1, evaluated: true}
				_, err := NewEngine(rnd).Crossover(NewPopulation(empty, NewChromosome("01").CalculateFitnessValue(onesRatio)), Carousel, TwoPoint)
				return err
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			rnd := &countingRandom{Random: NewRandom(3)}
			err := tc.Run(rnd)
			assert.ErrorIs(t, err, ErrorInvalidArgument)
			assert.Equal(t, 0, rnd.draws)
		})
	}
}

func TestEngineMutateEmptyPopulation(t *testing.T) {
	next, err := NewEngine(NewRandom(3)).Mutate(NewPopulation(), 0.5, "01")
	require.NoError(t, err)
	assert.Equal(t, 0, next.Len())
}

func TestEnumText(t *testing.T) {
	assert := assert.New(t)

	var s SelectionType
	require.NoError(t, s.UnmarshalText([]byte("carousel")))
	assert.Equal(Carousel, s)
	assert.ErrorIs(s.UnmarshalText([]byte("tournament")), ErrorInvalidArgument)

	var c CrossoverType
	require.NoError(t, c.UnmarshalText([]byte("TWO_POINT")))
	assert.Equal(TwoPoint, c)
	text, err := OnePoint.MarshalText()
	require.NoError(t, err)
	assert.Equal("ONE_POINT", string(text))
	assert.ErrorIs(c.UnmarshalText([]byte("uniform")), ErrorInvalidArgument)

	var m MutationType
	require.NoError(t, m.UnmarshalText([]byte("BIT_FLIP")))
	assert.Equal(BitFlip, m)
	assert.Equal("MutationType(9)", MutationType(9).String())
}
