package results

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ParseError signals malformed job-results input. It is deterministic
// for a given input and must never be retried.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("cannot parse job results: %s", e.Reason)
	}
	return fmt.Sprintf("cannot parse job results: %s in %q", e.Reason, e.Token)
}

// Parse turns raw job-result text into a JobResultSet.
// Input that starts with '{' must be a flat JSON object of
// job name to status, anything else is treated as
// newline/whitespace delimited name:status tokens.
func Parse(raw string) (*JobResultSet, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, &ParseError{Reason: "empty input"}
	}

	if strings.HasPrefix(trimmed, "{") {
		return parseJSON(trimmed)
	}

	return parseLines(trimmed)
}

// parseJSON decodes a flat string-to-string JSON object with the
// document's key order preserved. There is no fallback to the line
// format: input that looks like JSON has to be valid JSON.
func parseJSON(raw string) (*JobResultSet, error) {
	set := NewJobResultSet()

	dec := json.NewDecoder(strings.NewReader(raw))
	t, err := dec.Token()
	if err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("invalid JSON: %s", err)}
	}
	if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return nil, &ParseError{Reason: "JSON input must be an object"}
	}

	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("invalid JSON: %s", err)}
		}
		name := keyToken.(string)
		if name == "" {
			return nil, &ParseError{Reason: "empty job name"}
		}

		valueToken, err := dec.Token()
		if err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("invalid JSON: %s", err)}
		}
		value, ok := valueToken.(string)
		if !ok {
			return nil, &ParseError{Token: name, Reason: "job status must be a string"}
		}

		status, err := StatusFromString(value)
		if err != nil {
			return nil, &ParseError{Token: fmt.Sprintf("%s:%s", name, value), Reason: err.Error()}
		}
		set.Add(name, status)
	}

	if _, err := dec.Token(); err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("invalid JSON: %s", err)}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Reason: "trailing content after JSON object"}
	}

	if set.Len() == 0 {
		return nil, &ParseError{Reason: "no job results in input"}
	}
	return set, nil
}

func parseLines(raw string) (*JobResultSet, error) {
	set := NewJobResultSet()

	for _, line := range strings.Split(raw, "\n") {
		for _, token := range strings.Fields(line) {
			name, statusString, found := strings.Cut(token, ":")
			if !found {
				return nil, &ParseError{Token: token, Reason: "missing ':' separator"}
			}
			if name == "" {
				return nil, &ParseError{Token: token, Reason: "empty job name"}
			}

			status, err := StatusFromString(statusString)
			if err != nil {
				return nil, &ParseError{Token: token, Reason: err.Error()}
			}
			set.Add(name, status)
		}
	}

	if set.Len() == 0 {
		return nil, &ParseError{Reason: "no job results in input"}
	}
	return set, nil
}
