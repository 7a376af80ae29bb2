// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/base-converter/internal/state"
	"github.com/pdiddy/base-converter/pkg/types"
)

// conversion is the machine-readable result of the convert command.
type conversion struct {
	Input  string        `json:"input" yaml:"input"`
	Base   types.Base    `json:"base" yaml:"base"`
	Values []types.Entry `json:"values" yaml:"values"`
}

func writeConversion(w io.Writer, c conversion, format types.OutputFormat, prefix bool) error {
	switch format {
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	case types.OutputYAML:
		data, err := yaml.Marshal(&c)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	fmt.Fprintf(w, "%-18s  %s\n", "Base", "Value")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, e := range c.Values {
		value := e.Digits
		if prefix {
			value = e.Literal
		}
		fmt.Fprintf(w, "%-18s  %s\n", fmt.Sprintf("%s (%d)", e.Name, int(e.Base)), value)
	}
	return nil
}

// writeFields prints every field of an interactive session. The last edited
// field is marked with '>' and a just-copied field with "(copied)".
func writeFields(w io.Writer, snap state.Snapshot) {
	byBase := make(map[types.Base]types.Entry, len(snap.Values))
	for _, e := range snap.Values {
		byBase[e.Base] = e
	}

	fmt.Fprintln(w)
	for _, b := range types.Bases {
		marker := " "
		if b == snap.LastEdited {
			marker = ">"
		}
		value := "-"
		if e, ok := byBase[b]; ok {
			value = e.Literal
		}
		line := fmt.Sprintf("%s %-18s  %s", marker, fmt.Sprintf("%s (%d)", b.Name(), int(b)), value)
		if snap.Copied == b {
			line += "  (copied)"
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
}
