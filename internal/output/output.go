package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mj1618/taskbar-embed/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	default:
		return FormatYAML, fmt.Errorf("unsupported format: %s (use yaml or json)", s)
	}
}

// SizeResult is the output of the `size` command.
type SizeResult struct {
	Request   model.Size `yaml:"request"   json:"request"`
	Sizing    string     `yaml:"sizing"    json:"sizing"`
	Thickness int32      `yaml:"thickness" json:"thickness"`
	Gap       int32      `yaml:"gap"       json:"gap"`
	Available model.Size `yaml:"available" json:"available"`
}

// PlanResult is the output of the `plan` command.
type PlanResult struct {
	Size   model.Size   `yaml:"size"   json:"size"`
	Layout model.Layout `yaml:"layout" json:"layout"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// Stream writes one JSON object per line. Stream output is always JSONL
// regardless of --format.
type Stream struct {
	enc   *json.Encoder
	count int
}

// NewStream returns a JSONL stream on w.
func NewStream(w io.Writer) *Stream {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Stream{enc: enc}
}

// Emit writes one event with the given type and fields.
func (s *Stream) Emit(eventType string, fields map[string]interface{}) error {
	m := map[string]interface{}{
		"type": eventType,
		"ts":   time.Now().Unix(),
	}
	for k, v := range fields {
		m[k] = v
	}
	s.count++
	return s.enc.Encode(m)
}

// Count returns the number of events written.
func (s *Stream) Count() int { return s.count }
