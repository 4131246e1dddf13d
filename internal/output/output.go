package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeHuman Mode = "human"
	ModeJSON  Mode = "json"
	ModeYAML  Mode = "yaml"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeHuman, ModeJSON, ModeYAML:
		return m, nil
	case "":
		return ModeHuman, nil
	default:
		return "", fmt.Errorf("unknown output mode %q (expected human, json or yaml)", s)
	}
}

type Human interface {
	Human(w io.Writer) error
}

type Envelope struct {
	OK    bool     `json:"ok"`
	Data  any      `json:"data,omitempty"`
	Error *ErrBody `json:"error,omitempty"`
	Meta  Meta     `json:"meta"`
}

type Meta struct {
	RequestID  string `json:"requestId"`
	DurationMS int64  `json:"durationMs"`
	Timestamp  string `json:"timestamp"`
}

type ErrBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Hint      string `json:"hint,omitempty"`
	Category  string `json:"category,omitempty"`
	Retryable bool   `json:"retryable"`
}

func PrintSuccess(w io.Writer, mode Mode, data any, requestID string, start time.Time) error {
	if mode == ModeHuman || mode == "" {
		if h, ok := data.(Human); ok {
			return h.Human(w)
		}
		_, err := fmt.Fprintln(w, "ok")
		return err
	}
	return printEnvelope(w, mode, Envelope{OK: true, Data: data, Meta: meta(requestID, start)})
}

func PrintError(w io.Writer, mode Mode, body ErrBody, requestID string, start time.Time) error {
	if mode == ModeHuman || mode == "" {
		_, err := fmt.Fprintf(w, "error: %s\n", body.Message)
		if err == nil && body.Hint != "" {
			_, err = fmt.Fprintf(w, "hint: %s\n", body.Hint)
		}
		return err
	}
	return printEnvelope(w, mode, Envelope{OK: false, Error: &body, Meta: meta(requestID, start)})
}

func printEnvelope(w io.Writer, mode Mode, env Envelope) error {
	switch mode {
	case ModeYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toYAMLValue(env)); err != nil {
			return err
		}
		return enc.Close()
	default:
		b, err := json.Marshal(env)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
}

// toYAMLValue round-trips v through JSON so yaml output uses the json field
// names of the domain types.
func toYAMLValue(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}

func meta(requestID string, start time.Time) Meta {
	return Meta{
		RequestID:  requestID,
		DurationMS: time.Since(start).Milliseconds(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}
