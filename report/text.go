package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dariuszzbyrad/jgenetics/genetic"
)

// TimeLayout names report files after their creation time
const TimeLayout = "2006_01_02_15_04_05"

var (
	// ErrorSaveReport writing to the report failed
	ErrorSaveReport = errors.New("problem with save information to global report")
)

// Text writes one "iteration min avg max" line per update
type Text struct {
	w io.Writer
}

// NewText reports to w
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// Update appends the iteration line
func (t *Text) Update(iteration int, s genetic.Statistic) error {
	if _, err := fmt.Fprintf(t.w, "%d %v %v %v\n", iteration, s.Min, s.Avg, s.Max); err != nil {
		return fmt.Errorf("%w: %v", ErrorSaveReport, err)
	}

	return nil
}

// TextFile is a Text report backed by report_<time>.txt
type TextFile struct {
	*Text
	f *os.File
}

// CreateTextFile creates report_<now>.txt in dir, appending when it already exists
func CreateTextFile(dir string, now time.Time) (*TextFile, error) {
	path := filepath.Join(dir, "report_"+now.Format(TimeLayout)+".txt")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrorSaveReport, err)
	}

	return &TextFile{Text: NewText(f), f: f}, nil
}

// Name is the path of the report file
func (t *TextFile) Name() string {
	return t.f.Name()
}

// Close flushes and closes the file
func (t *TextFile) Close() error {
	return t.f.Close()
}
