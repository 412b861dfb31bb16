package results

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Status represents the outcome of a single workflow job
type Status int

const (
	// Success the job finished without error
	Success Status = iota
	// Failure the job finished with an error
	Failure
	// Cancelled the job was interrupted from the outside
	Cancelled
	// Skipped the job was not run because of conditional logic
	Skipped
)

func (s Status) String() string {
	return toString[s]
}

func StatusFromString(statusString string) (Status, error) {
	if status, ok := toID[statusString]; ok {
		return status, nil
	}
	return 0, fmt.Errorf("unknown job status %q", statusString)
}

var toString = map[Status]string{
	Success:   "success",
	Failure:   "failure",
	Cancelled: "cancelled",
	Skipped:   "skipped",
}

var toID = map[string]Status{
	"success":   Success,
	"failure":   Failure,
	"cancelled": Cancelled,
	"skipped":   Skipped,
}

// MarshalJSON marshals the enum as a quoted json string
func (s Status) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(toString[s])
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

// UnmarshalJSON unmarshalls a quoted json string to the enum value.
// Unknown status strings are rejected, not coerced to the zero value.
func (s *Status) UnmarshalJSON(b []byte) error {
	var j string
	err := json.Unmarshal(b, &j)
	if err != nil {
		return err
	}
	status, err := StatusFromString(j)
	if err != nil {
		return err
	}
	*s = status
	return nil
}
