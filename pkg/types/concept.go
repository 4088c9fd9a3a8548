// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// FieldNames lists the MMI record fields in their fixed positional order.
var FieldNames = [...]string{
	"index",
	"mm",
	"score",
	"preferred_name",
	"cui",
	"semtypes",
	"trigger",
	"location",
	"pos_info",
	"tree_codes",
}

// NumFields is the number of fields in one MMI record.
const NumFields = len(FieldNames)

// Concept is one concept recognized by MetaMap, as reported on a single line
// of fielded MMI output. All fields are opaque text; sub-structure such as
// the bracketed semantic type list is not interpreted here.
type Concept struct {
	// Index is the utterance identifier (the sldiID id, or "USER").
	Index string `json:"index" yaml:"index"`

	// MM is the record type marker, normally "MMI".
	MM string `json:"mm" yaml:"mm"`

	// Score is the MetaMap Indexing score.
	Score string `json:"score" yaml:"score"`

	// PreferredName is the UMLS preferred name of the concept.
	PreferredName string `json:"preferred_name" yaml:"preferred_name"`

	// CUI is the UMLS concept unique identifier (e.g. "C0015967").
	CUI string `json:"cui" yaml:"cui"`

	// SemTypes is the bracketed semantic type list (e.g. "[sosy]").
	SemTypes string `json:"semtypes" yaml:"semtypes"`

	// Trigger describes the input text that triggered the concept.
	Trigger string `json:"trigger" yaml:"trigger"`

	// Location is the text location (TI, AB, TX).
	Location string `json:"location" yaml:"location"`

	// PosInfo holds the character positions of the trigger.
	PosInfo string `json:"pos_info" yaml:"pos_info"`

	// TreeCodes holds MeSH tree codes, when available.
	TreeCodes string `json:"tree_codes" yaml:"tree_codes"`
}

// Fields returns the record values in FieldNames order.
func (c Concept) Fields() [NumFields]string {
	return [NumFields]string{
		c.Index, c.MM, c.Score, c.PreferredName, c.CUI,
		c.SemTypes, c.Trigger, c.Location, c.PosInfo, c.TreeCodes,
	}
}

// ConceptFromFields builds a Concept from values in FieldNames order.
func ConceptFromFields(f [NumFields]string) Concept {
	return Concept{
		Index:         f[0],
		MM:            f[1],
		Score:         f[2],
		PreferredName: f[3],
		CUI:           f[4],
		SemTypes:      f[5],
		Trigger:       f[6],
		Location:      f[7],
		PosInfo:       f[8],
		TreeCodes:     f[9],
	}
}

// String renders the concept for display, omitting empty fields.
func (c Concept) String() string {
	var b strings.Builder
	b.WriteString("Concept(")
	first := true
	for i, v := range c.Fields() {
		if v == "" {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s=%q", FieldNames[i], v)
	}
	b.WriteString(")")
	return b.String()
}

// Corpus is the ordered collection of concepts produced by one invocation.
type Corpus []Concept

// CUIs returns the distinct concept identifiers in first-seen order.
func (c Corpus) CUIs() []string {
	seen := make(map[string]bool, len(c))
	var out []string
	for _, concept := range c {
		if concept.CUI == "" || seen[concept.CUI] {
			continue
		}
		seen[concept.CUI] = true
		out = append(out, concept.CUI)
	}
	return out
}
