// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders extracted concepts for output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/metamap-client/internal/mmi"
	"github.com/pdiddy/metamap-client/pkg/types"
)

// Format selects an output rendering.
type Format string

const (
	FormatMMI   Format = "mmi"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTable, FormatMMI, FormatJSON, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q: use table, mmi, json, or yaml", s)
}

// Write renders corpus to w in the given format.
func Write(w io.Writer, corpus types.Corpus, format Format) error {
	switch format {
	case FormatMMI:
		return mmi.Write(w, corpus)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(nonNil(corpus))
	case FormatYAML:
		data, err := yaml.Marshal(nonNil(corpus))
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatTable:
		return writeTable(w, corpus)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// nonNil makes empty results encode as [] rather than null.
func nonNil(corpus types.Corpus) types.Corpus {
	if corpus == nil {
		return types.Corpus{}
	}
	return corpus
}

func writeTable(w io.Writer, corpus types.Corpus) error {
	if len(corpus) == 0 {
		_, err := fmt.Fprintln(w, "No concepts found.")
		return err
	}

	fmt.Fprintf(w, "%-4s  %-10s  %-8s  %-10s  %-40s  %s\n",
		"Rank", "Index", "Score", "CUI", "Preferred Name", "Semantic Types")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, c := range corpus {
		fmt.Fprintf(w, "%-4d  %-10s  %-8s  %-10s  %-40s  %s\n",
			i+1, truncate(c.Index, 10), c.Score, c.CUI, truncate(c.PreferredName, 40), c.SemTypes)
	}

	_, err := fmt.Fprintf(w, "\n%d concepts, %d distinct CUIs\n", len(corpus), len(corpus.CUIs()))
	return err
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}
