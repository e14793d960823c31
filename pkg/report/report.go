package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"dataextract/pkg/utils"
)

// Record is one extraction outcome. Data carries the parsed JSON value, or
// for XML the document re-serialized as text.
type Record struct {
	ID        string `json:"id"`
	RunID     string `json:"run_id,omitempty"`
	Path      string `json:"path"`
	Format    string `json:"format,omitempty"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
	Host      string `json:"host,omitempty"`
	Share     string `json:"share,omitempty"`
}

type Reporter interface {
	Report(Record)
	Close()
}

// JSONReporter writes one JSON object per line.
type JSONReporter struct {
	file  *os.File
	enc   *json.Encoder
	runID string
	mu    sync.Mutex
}

func NewJSONReporter(path string) (*JSONReporter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}
	return &JSONReporter{
		file:  f,
		enc:   json.NewEncoder(f),
		runID: uuid.NewString(),
	}, nil
}

// RunID identifies every record written by this reporter.
func (r *JSONReporter) RunID() string {
	return r.runID
}

func (r *JSONReporter) Report(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stamp(&rec)
	if rec.RunID == "" {
		rec.RunID = r.runID
	}
	if err := r.enc.Encode(rec); err != nil {
		utils.LogError("Failed to write report record for %s: %v", rec.Path, err)
	}
}

func (r *JSONReporter) Close() {
	if r.file != nil {
		r.file.Close()
	}
}

// ConsoleReporter prints each record through the logger.
type ConsoleReporter struct{}

func (c *ConsoleReporter) Report(rec Record) {
	if rec.Error != "" {
		utils.LogError("%s: %s", rec.Path, rec.Error)
		return
	}
	utils.LogSuccess("Extracted %s (%s)", utils.Bold(rec.Path), rec.Format)
	switch d := rec.Data.(type) {
	case nil:
		return
	case string:
		fmt.Printf("    %s\n", strings.ReplaceAll(strings.TrimSpace(d), "\n", "\n    "))
		return
	}
	b, err := json.MarshalIndent(rec.Data, "    ", "  ")
	if err != nil {
		utils.LogWarning("Cannot render %s: %v", rec.Path, err)
		return
	}
	fmt.Printf("    %s\n", b)
}

func (c *ConsoleReporter) Close() {}

// Multi fans each record out to all reporters.
type Multi []Reporter

func (m Multi) Report(rec Record) {
	stamp(&rec)
	for _, r := range m {
		r.Report(rec)
	}
}

func (m Multi) Close() {
	for _, r := range m {
		r.Close()
	}
}

func stamp(rec *Record) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp == "" {
		rec.Timestamp = time.Now().Format(time.RFC3339)
	}
}
