// Package trace models recorded browser interaction traces: the action
// vocabulary a recorder captures and the JSON envelope it writes to disk.
package trace

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/odvcencio/pagewright/pkg/errors"
)

// Trace is a recorded browsing session: an ordered list of actions
// plus recorder metadata.
type Trace struct {
	ID         string    `json:"id,omitempty"`
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	Actions    []Action  `json:"actions"`
}

// Decode reads a JSON trace envelope. Traces written by recorders that
// omit an ID are assigned a fresh one.
func Decode(r io.Reader) (*Trace, error) {
	var tr Trace
	if err := json.NewDecoder(r).Decode(&tr); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeTraceParse, "failed to decode trace")
	}
	if tr.ID == "" {
		tr.ID = uuid.NewString()
	}
	return &tr, nil
}

// Load reads and decodes a trace file.
func Load(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeTraceRead, "failed to open trace file").
			WithContext("path", path)
	}
	defer f.Close()

	tr, decodeErr := Decode(f)
	if decodeErr != nil {
		if pwErr, ok := decodeErr.(*errors.Error); ok {
			return nil, pwErr.WithContext("path", path)
		}
		return nil, decodeErr
	}
	return tr, nil
}
