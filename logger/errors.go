package logger

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// Error describes a failed run step: where the run stopped, why, and with which parameters.
// It renders as a JSON document, logs as a slog group and unwraps to the cause.
type Error struct {
	Level      string
	Err        error
	Parameters interface{}
	Run        string
	Iteration  int
	Message    string
}

type renderedError struct {
	Level      string      `json:"level"`
	Message    string      `json:"message"`
	Cause      string      `json:"cause,omitempty"`
	Run        string      `json:"run,omitempty"`
	Iteration  int         `json:"iteration"`
	Parameters interface{} `json:"parameters,omitempty"`
}

func (e *Error) cause() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *Error) Error() string {
	s, err := json.Marshal(renderedError{
		Level:      e.Level,
		Message:    e.Message,
		Cause:      e.cause(),
		Run:        e.Run,
		Iteration:  e.Iteration,
		Parameters: e.Parameters,
	})
	if err != nil {
		return fmt.Sprintf("%s at iteration %d of run %s: %s", e.Message, e.Iteration, e.Run, e.cause())
	}

	return string(s)
}

// LogValue keeps the fields apart when the error is logged through slog
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("message", e.Message),
		slog.String("run", e.Run),
		slog.Int("iteration", e.Iteration),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}

	return slog.GroupValue(attrs...)
}

// Unwrap returns the cause so errors.Is sees through the report
func (e *Error) Unwrap() error {
	return e.Err
}
