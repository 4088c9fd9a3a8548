// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mmi encodes and decodes MetaMap's fielded MMI output, one
// pipe-delimited concept record per line.
package mmi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/metamap-client/pkg/types"
)

// Separator delimits fields within a record line.
const Separator = "|"

// ErrFieldCount is returned when a line does not split into exactly
// types.NumFields fields.
var ErrFieldCount = errors.New("wrong number of MMI fields")

// Encode joins the concept fields with Separator in FieldNames order.
// Values are not escaped: a field containing "|" will not decode back to
// the same concept.
func Encode(c types.Concept) string {
	f := c.Fields()
	return strings.Join(f[:], Separator)
}

// Decode splits line on Separator and binds the tokens to fields by
// position. Lines with any other token count are rejected with ErrFieldCount.
func Decode(line string) (types.Concept, error) {
	tokens := strings.Split(line, Separator)
	if len(tokens) != types.NumFields {
		return types.Concept{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(tokens), types.NumFields)
	}
	var f [types.NumFields]string
	copy(f[:], tokens)
	return types.ConceptFromFields(f), nil
}

// LoadLines decodes each non-blank line into a concept, preserving order.
// A trailing carriage return is stripped first; empty and whitespace-only
// lines produce no record. The first malformed line aborts the load.
func LoadLines(lines []string) (types.Corpus, error) {
	corpus := make(types.Corpus, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := Decode(line)
		if err != nil {
			return corpus, fmt.Errorf("line %d: %w", i+1, err)
		}
		corpus = append(corpus, c)
	}
	return corpus, nil
}

// Load reads r to EOF and decodes it with LoadLines.
func Load(r io.Reader) (types.Corpus, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading MMI output: %w", err)
	}
	return LoadLines(strings.Split(string(data), "\n"))
}

// Write encodes each concept on its own line.
func Write(w io.Writer, corpus types.Corpus) error {
	bw := bufio.NewWriter(w)
	for _, c := range corpus {
		if _, err := bw.WriteString(Encode(c) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
