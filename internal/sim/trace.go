package sim

import (
	"bufio"
	"os"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"

	"github.com/ajitpratap0/volley/pkg/volleyerrors"
)

// EventType labels a trace event.
type EventType string

const (
	EventFired    EventType = "fired"
	EventHit      EventType = "hit"
	EventReturned EventType = "returned"
)

// Event is one line of the replay trace: what happened, when in simulated
// time, and where.
type Event struct {
	Time float64   `json:"t"`
	Type EventType `json:"type"`
	Kind string    `json:"kind"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
}

// TraceWriter records simulation events as gzip-compressed JSONL. Writes are
// buffered; the trace is not durable until Close returns.
type TraceWriter struct {
	file *os.File
	gz   *gzip.Writer
	buf  *bufio.Writer
	enc  *json.Encoder
}

// NewTraceWriter creates the trace file, truncating any existing one.
func NewTraceWriter(path string) (*TraceWriter, error) {
	f, err := os.Create(path) //nolint:gosec // G304: path is caller-controlled
	if err != nil {
		return nil, volleyerrors.Wrap(err, volleyerrors.ErrorTypeFile, "failed to create trace file").
			WithDetail("path", path)
	}

	gz := gzip.NewWriter(f)
	buf := bufio.NewWriter(gz)
	return &TraceWriter{
		file: f,
		gz:   gz,
		buf:  buf,
		enc:  json.NewEncoder(buf),
	}, nil
}

// Write appends one event line.
func (tw *TraceWriter) Write(ev Event) error {
	if err := tw.enc.Encode(ev); err != nil {
		return volleyerrors.Wrap(err, volleyerrors.ErrorTypeFile, "failed to encode trace event")
	}
	return nil
}

// Close flushes and closes the trace. The writer is unusable afterwards.
func (tw *TraceWriter) Close() error {
	if err := tw.buf.Flush(); err != nil {
		return volleyerrors.Wrap(err, volleyerrors.ErrorTypeFile, "failed to flush trace buffer")
	}
	if err := tw.gz.Close(); err != nil {
		return volleyerrors.Wrap(err, volleyerrors.ErrorTypeFile, "failed to close trace compressor")
	}
	if err := tw.file.Close(); err != nil {
		return volleyerrors.Wrap(err, volleyerrors.ErrorTypeFile, "failed to close trace file")
	}
	return nil
}
