// Package output renders analysis results in the formats selected by the
// CLI's output flag.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Formatter renders a result structure to bytes.
type Formatter interface {
	Format(data any, pretty bool) ([]byte, error)
}

// Tabular is implemented by results that can render as rows, for the CSV and
// table formatters.
type Tabular interface {
	Headers() []string
	Rows() [][]string
}

// NewFormatter returns the formatter for a format name. Unknown names fall
// back to JSON.
func NewFormatter(format string) Formatter {
	switch format {
	case "yaml":
		return &YAMLFormatter{}
	case "csv":
		return &CSVFormatter{}
	case "table":
		return &TableFormatter{}
	default:
		return &JSONFormatter{}
	}
}

// JSONFormatter renders JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(data any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}

// YAMLFormatter renders YAML.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(data any, _ bool) ([]byte, error) {
	return yaml.Marshal(data)
}

// CSVFormatter renders Tabular data as CSV.
type CSVFormatter struct{}

func (f *CSVFormatter) Format(data any, _ bool) ([]byte, error) {
	table, ok := data.(Tabular)
	if !ok {
		return nil, fmt.Errorf("csv output requires tabular data, got %T", data)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(table.Headers()); err != nil {
		return nil, err
	}
	if err := w.WriteAll(table.Rows()); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// TableFormatter renders Tabular data as an aligned text table.
type TableFormatter struct{}

func (f *TableFormatter) Format(data any, _ bool) ([]byte, error) {
	table, ok := data.(Tabular)
	if !ok {
		return nil, fmt.Errorf("table output requires tabular data, got %T", data)
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	for i, h := range table.Headers() {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, h)
	}
	fmt.Fprintln(w)

	for _, row := range table.Rows() {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}

	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
