// Package knapsack scores binary genomes against a 0/1 knapsack instance: gene i set to '1'
// packs item i.
package knapsack

import (
	"errors"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dariuszzbyrad/jgenetics/genetic"
)

// Problem is one knapsack instance
type Problem struct {
	Weights        []float64 `toml:"weights"`
	SurvivalPoints []float64 `toml:"survival_points"`
	WeightLimit    float64   `toml:"weight_limit"`
}

var (
	// ErrorInvalidProblem weights and survival points don't describe the same items
	ErrorInvalidProblem = errors.New("weights and survival points must have the same non zero length")
)

// Default is the camping trip instance: its best packing is "1101111" worth 102 points
func Default() *Problem {
	return &Problem{
		Weights:        []float64{1, 5, 10, 1, 7, 5, 1},
		SurvivalPoints: []float64{10, 20, 15, 2, 30, 10, 30},
		WeightLimit:    20,
	}
}

// Decode reads the [knapsack] table of a TOML document, falling back to Default when absent
func Decode(r io.Reader) (*Problem, error) {
	doc := struct {
		Knapsack *Problem `toml:"knapsack"`
	}{}
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	if doc.Knapsack == nil {
		return Default(), nil
	}
	if err := doc.Knapsack.Validate(); err != nil {
		return nil, err
	}

	return doc.Knapsack, nil
}

// Load reads the [knapsack] table of a TOML file
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Validate checks that every item has a weight and a value
func (p *Problem) Validate() error {
	if len(p.Weights) == 0 || len(p.Weights) != len(p.SurvivalPoints) {
		return ErrorInvalidProblem
	}

	return nil
}

// Items is the genome length the problem expects
func (p *Problem) Items() int {
	return len(p.Weights)
}

// Fitness returns the survival points of the packed items, or 0 when the packing is too heavy
func (p *Problem) Fitness() genetic.FitnessFunction {
	return func(genome string) float64 {
		var weight, points float64
		for i := 0; i < len(genome) && i < len(p.Weights); i++ {
			if genome[i] == '1' {
				weight += p.Weights[i]
				points += p.SurvivalPoints[i]
			}
		}
		if weight > p.WeightLimit {
			return 0
		}

		return points
	}
}
