package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jmespath-community/go-jmespath"
	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

type outputFlags struct {
	format string
	query  string
}

func bindOutputFlags(cmd *cobra.Command, of *outputFlags) {
	cmd.Flags().StringVarP(&of.format, "output", "o", formatTable, "output format: table or json")
	cmd.Flags().StringVar(&of.query, "query", "", "JMESPath expression applied to JSON output")
}

func (of outputFlags) validate() error {
	switch of.format {
	case formatTable, formatJSON:
	default:
		return usageError("unknown output format %q (want table or json)", of.format)
	}
	if of.query == "" {
		return nil
	}
	if of.format != formatJSON {
		return usageError("--query requires -o json")
	}
	if _, err := jmespath.Compile(of.query); err != nil {
		return usageError("invalid --query: %v", err)
	}
	return nil
}

// render writes data as JSON (optionally filtered by the JMESPath query) or
// hands a tabwriter to table.
func (of outputFlags) render(w io.Writer, data any, table func(tw *tabwriter.Writer)) error {
	if of.format == formatJSON {
		return writeJSON(w, data, of.query)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

func writeJSON(w io.Writer, data any, query string) error {
	if query != "" {
		generic, err := toGeneric(data)
		if err != nil {
			return err
		}
		if data, err = jmespath.Search(query, generic); err != nil {
			return fmt.Errorf("evaluate query: %w", err)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// toGeneric round-trips through JSON so queries see json tag names.
func toGeneric(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}
	return out, nil
}

func row(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
