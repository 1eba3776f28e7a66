package report

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/dariuszzbyrad/jgenetics/genetic"
)

// DefaultSubject is the NATS subject iteration events are published on
const DefaultSubject = "jgenetics.iterations"

// Conn is the part of *nats.Conn the publisher needs
type Conn interface {
	Publish(subject string, data []byte) error
}

var _ Conn = (*nats.Conn)(nil)

// Event is the JSON payload of one iteration
type Event struct {
	Run       string  `json:"run"`
	Iteration int     `json:"iteration"`
	Min       float64 `json:"min"`
	Avg       float64 `json:"avg"`
	Max       float64 `json:"max"`
}

// Publisher sends every iteration statistic as an Event
type Publisher struct {
	conn    Conn
	subject string
	run     string
}

// NewPublisher publishes events of run on subject
func NewPublisher(conn Conn, subject, run string) *Publisher {
	if subject == "" {
		subject = DefaultSubject
	}

	return &Publisher{conn: conn, subject: subject, run: run}
}

// Update publishes the iteration event
func (p *Publisher) Update(iteration int, s genetic.Statistic) error {
	data, err := json.Marshal(Event{
		Run:       p.run,
		Iteration: iteration,
		Min:       s.Min,
		Avg:       s.Avg,
		Max:       s.Max,
	})
	if err != nil {
		return err
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish iteration %d: %w", iteration, err)
	}

	return nil
}
