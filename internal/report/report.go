// Package report renders a finished betweenness score table as text, JSON,
// YAML, TOML or Prometheus text exposition.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/centrality/betweenness"
)

// Table kinds.
const (
	KindNodes = "nodes"
	KindEdges = "edges"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatProm = "prom"
)

// ErrUnknownFormat is returned by Write for an unsupported format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Row is one scored vertex or edge. From/To are set for edges only.
type Row struct {
	ID    string  `json:"id" yaml:"id" toml:"id"`
	From  string  `json:"from,omitempty" yaml:"from,omitempty" toml:"from,omitempty"`
	To    string  `json:"to,omitempty" yaml:"to,omitempty" toml:"to,omitempty"`
	Score float64 `json:"score" yaml:"score" toml:"score"`
}

// Table is a ranked result with the run parameters that produced it.
type Table struct {
	Kind       string `json:"kind" yaml:"kind" toml:"kind"`
	Topology   string `json:"topology" yaml:"topology" toml:"topology"`
	Vertices   int    `json:"vertices" yaml:"vertices" toml:"vertices"`
	Edges      int    `json:"edges" yaml:"edges" toml:"edges"`
	Normalized bool   `json:"normalized" yaml:"normalized" toml:"normalized"`
	Samples    int    `json:"samples,omitempty" yaml:"samples,omitempty" toml:"samples,omitempty"`
	Rows       []Row  `json:"rows" yaml:"rows" toml:"rows"`
}

// NodeRows ranks vertex scores: highest first, ties by ID.
func NodeRows(scores map[string]float64) []Row {
	rows := make([]Row, 0, len(scores))
	for id, s := range scores {
		rows = append(rows, Row{ID: id, Score: s})
	}
	sortRows(rows)

	return rows
}

// EdgeRows ranks edge scores: highest first, ties by "From→To".
func EdgeRows(scores map[betweenness.EdgeKey]float64) []Row {
	rows := make([]Row, 0, len(scores))
	for k, s := range scores {
		rows = append(rows, Row{ID: k.String(), From: k.From, To: k.To, Score: s})
	}
	sortRows(rows)

	return rows
}

func sortRows(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].ID < rows[j].ID
	})
}

// Top keeps the first n rows; n ≤ 0 keeps all.
func (t *Table) Top(n int) {
	if n > 0 && n < len(t.Rows) {
		t.Rows = t.Rows[:n]
	}
}

// Write encodes t to w in the named format.
func Write(w io.Writer, format string, t Table) error {
	switch format {
	case FormatText:
		return writeText(w, t)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return wrap("json", enc.Encode(t))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return wrap("yaml", err)
		}
		return wrap("yaml", enc.Close())
	case FormatTOML:
		return wrap("toml", toml.NewEncoder(w).Encode(t))
	case FormatProm:
		return writeProm(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, t Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "# %s betweenness on %s (V=%d, E=%d, normalized=%t",
		t.Kind, t.Topology, t.Vertices, t.Edges, t.Normalized)
	if t.Samples > 0 {
		fmt.Fprintf(tw, ", k=%d", t.Samples)
	}
	fmt.Fprintln(tw, ")")
	fmt.Fprintln(tw, "RANK\tID\tSCORE")
	for i, r := range t.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%.6f\n", i+1, r.ID, r.Score)
	}

	return wrap("text", tw.Flush())
}

func wrap(format string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("report: encoding %s: %w", format, err)
}
