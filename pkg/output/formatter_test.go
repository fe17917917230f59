package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fakeTable struct{}

func (f *fakeTable) Headers() []string {
	return []string{"frame", "f0_hz"}
}

func (f *fakeTable) Rows() [][]string {
	return [][]string{
		{"0", "112.00"},
		{"1", "115.50"},
	}
}

func TestNewFormatterSelection(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter("json"))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter("yaml"))
	assert.IsType(t, &CSVFormatter{}, NewFormatter("csv"))
	assert.IsType(t, &TableFormatter{}, NewFormatter("table"))
	assert.IsType(t, &JSONFormatter{}, NewFormatter("bogus"))
}

func TestJSONFormatter(t *testing.T) {
	f := &JSONFormatter{}

	data := map[string]any{"f0": 112.0, "voiced": true}

	out, err := f.Format(data, true)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, 112.0, decoded["f0"])
	assert.Equal(t, true, decoded["voiced"])
	assert.Contains(t, string(out), "\n") // pretty printed
}

func TestYAMLFormatter(t *testing.T) {
	f := &YAMLFormatter{}

	data := map[string]any{"f0": 112.0}

	out, err := f.Format(data, false)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, 112.0, decoded["f0"])
}

func TestCSVFormatter(t *testing.T) {
	f := &CSVFormatter{}

	out, err := f.Format(&fakeTable{}, false)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "frame,f0_hz", lines[0])
	assert.Equal(t, "0,112.00", lines[1])
	assert.Equal(t, "1,115.50", lines[2])
}

func TestCSVFormatterRejectsNonTabular(t *testing.T) {
	f := &CSVFormatter{}

	_, err := f.Format(map[string]any{"a": 1}, false)
	require.Error(t, err)
}

func TestTableFormatter(t *testing.T) {
	f := &TableFormatter{}

	out, err := f.Format(&fakeTable{}, false)
	require.NoError(t, err)

	text := string(out)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "frame")
	assert.Contains(t, lines[0], "f0_hz")
	assert.Contains(t, lines[1], "112.00")
}

func TestTableFormatterRejectsNonTabular(t *testing.T) {
	f := &TableFormatter{}

	_, err := f.Format("plain string", false)
	require.Error(t, err)
}
