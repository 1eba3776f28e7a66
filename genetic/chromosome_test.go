package genetic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberOfOnes(genome string) float64 {
	return float64(strings.Count(genome, "1"))
}

func inAlphabet(genome, alphabet string) bool {
	for _, r := range genome {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}

func TestGenerate(t *testing.T) {
	cases := []struct {
		Name     string
		Length   int
		Alphabet string
		Error    error
	}{
		{Name: "Two genes", Length: 2, Alphabet: "ABCD"},
		{Name: "Symbols", Length: 6, Alphabet: "0A1C^&#"},
		{Name: "Unicode alphabet", Length: 9, Alphabet: "αβγ"},
		{Name: "Single symbol", Length: 4, Alphabet: "x"},
		{Name: "Zero length", Length: 0, Alphabet: "01", Error: ErrorInvalidArgument},
		{Name: "Negative length", Length: -3, Alphabet: "01", Error: ErrorInvalidArgument},
		{Name: "Empty alphabet", Length: 3, Alphabet: "", Error: ErrorInvalidArgument},
	}
	rnd := NewRandom(1)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			assert := assert.New(t)
			c, err := Generate(tc.Length, tc.Alphabet, rnd)
			if tc.Error != nil {
				assert.ErrorIs(err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(tc.Length, c.Len())
			assert.True(inAlphabet(c.Genome(), tc.Alphabet))
			assert.False(c.Evaluated())
		})
	}
}

func TestGenerateKeepsDuplicateSymbols(t *testing.T) {
	m := &mockRandom{}
	m.On("Intn", 4).Return(3).Once()
	m.On("Intn", 4).Return(0).Once()
	m.On("Intn", 4).Return(2).Once()

	c, err := Generate(3, "aabc", m)
	require.NoError(t, err)
	assert.Equal(t, "cab", c.Genome())
	m.AssertExpectations(t)
}

func TestGenerateBinary(t *testing.T) {
	assert := assert.New(t)
	rnd := NewRandom(3)

	c, err := GenerateBinary(8, rnd)
	require.NoError(t, err)
	assert.Equal(8, c.Len())
	assert.True(inAlphabet(c.Genome(), BinaryAlphabet))

	_, err = GenerateBinary(1, rnd)
	assert.ErrorIs(err, ErrorInvalidArgument)
	_, err = GenerateBinary(0, rnd)
	assert.ErrorIs(err, ErrorInvalidArgument)
}

func TestChromosome(t *testing.T) {
	t.Run("Calculate fitness value", func(t *testing.T) {
		assert := assert.New(t)
		c := NewChromosome("ABCDEF")
		evaluated := c.CalculateFitnessValue(numberOfOnes)
		assert.True(evaluated.Evaluated())
		assert.Equal(0.0, evaluated.Fitness())
		assert.False(c.Evaluated(), "receiver must not change")

		evaluated = NewChromosome("0110").CalculateFitnessValue(numberOfOnes)
		assert.Equal(2.0, evaluated.Fitness())
	})

	t.Run("Equality ignores fitness", func(t *testing.T) {
		assert := assert.New(t)
		a := NewChromosome("0110")
		b := NewChromosome("0110").CalculateFitnessValue(numberOfOnes)
		assert.True(a.Equal(b))
		assert.Equal(a.Key(), b.Key())
		assert.False(a.Equal(NewChromosome("0111")))
	})

	t.Run("String", func(t *testing.T) {
		assert := assert.New(t)
		assert.Equal("Chromosome[genome=01]", NewChromosome("01").String())
		assert.Equal("Chromosome[genome=01, fitness=1]", NewChromosome("01").CalculateFitnessValue(numberOfOnes).String())
	})
}
