package runs

import (
	"errors"

	"github.com/dariuszzbyrad/jgenetics/entities"
)

// Storage interface to keep the outcome of finished runs
type Storage interface {
	StoreRun(r *entities.Run) error
	GetRun(runID string) (*entities.Run, error)
}

var (
	// ErrorRunAlreadyExists returned when storing a run id twice
	ErrorRunAlreadyExists = errors.New("the run can't be stored because it already exists")
	// ErrorInvalidRun run not found
	ErrorInvalidRun = errors.New("Invalid Run ID")
	// ErrorMissingRunID missing run ID
	ErrorMissingRunID = errors.New("Missing Run ID")
	// ErrorMissingRun nil pointer reference to Run
	ErrorMissingRun = errors.New("Nil pointer reference passed as Run")
)

func validate(r *entities.Run) error {
	if r == nil {
		return ErrorMissingRun
	}
	if r.ID == "" {
		return ErrorMissingRunID
	}

	return nil
}
