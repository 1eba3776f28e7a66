// Package report persists or displays the statistic of every iteration of a run.
package report

import (
	"errors"

	"github.com/dariuszzbyrad/jgenetics/genetic"
)

// Reporter receives the statistic of each evaluated population
type Reporter interface {
	Update(iteration int, s genetic.Statistic) error
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(iteration int, s genetic.Statistic) error

// Update calls f
func (f ReporterFunc) Update(iteration int, s genetic.Statistic) error {
	return f(iteration, s)
}

type multi []Reporter

// Multi fans every update out to all reporters. Every reporter is called even when
// one fails, the errors are joined.
func Multi(reporters ...Reporter) Reporter {
	return multi(reporters)
}

func (m multi) Update(iteration int, s genetic.Statistic) error {
	var errs []error
	for _, r := range m {
		if err := r.Update(iteration, s); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Nop ignores every update
var Nop Reporter = ReporterFunc(func(int, genetic.Statistic) error { return nil })
