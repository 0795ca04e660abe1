package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// Row is one line of a result file: the swept configuration followed by the
// attacker's win percentage.
type Row struct {
	Attacker      int // Dice or soldiers, depending on the file
	Defender      int
	WinPercentage float64
}

// Writer appends rows to a headerless CSV file. Each Append writes exactly one
// complete line, so concurrent callers never interleave within a row.
type Writer struct {
	mu   sync.Mutex
	path string
}

func NewWriter(path string) (*Writer, error) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		path: path,
	}, nil
}

func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) Append(row Row) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Open in append mode, creating the file if needed
	f, err := os.OpenFile(w.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open results file: %w", err)
	}

	writer := csv.NewWriter(f)
	err = writer.Write([]string{
		strconv.Itoa(row.Attacker),
		strconv.Itoa(row.Defender),
		strconv.FormatFloat(row.WinPercentage, 'f', -1, 64),
	})
	if err == nil {
		writer.Flush()
		err = writer.Error()
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to write result row: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close results file: %w", err)
	}
	return nil
}

// Erase removes every result file. A file that does not exist is an error.
func Erase(paths ...string) error {
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to erase results file: %w", err)
		}
	}
	return nil
}
