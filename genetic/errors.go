package genetic

import "errors"

var (
	// ErrorInvalidArgument malformed operator input, detected before any random draw
	ErrorInvalidArgument = errors.New("invalid argument")
	// ErrorEmptyPopulation the operation is undefined for a population without chromosomes
	ErrorEmptyPopulation = errors.New("population is empty")
	// ErrorHomogeneousPopulation every chromosome shares one genome so crossover can't make progress
	ErrorHomogeneousPopulation = errors.New("population is homogeneous")
)
