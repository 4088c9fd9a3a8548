// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metamap

import (
	"errors"
	"fmt"
	"strings"
)

// FileFormat selects the MetaMap single-line delimited input format.
type FileFormat string

const (
	// FormatSLDI is one sentence per line.
	FormatSLDI FileFormat = "sldi"
	// FormatSLDIID is one "id|sentence" pair per line.
	FormatSLDIID FileFormat = "sldiID"
)

// DefaultCompositePhrase is the default -Q value.
const DefaultCompositePhrase = 4

// ErrInvalidOptions wraps every configuration error reported by Validate.
var ErrInvalidOptions = errors.New("invalid metamap options")

// Options configures one extraction. Use DefaultOptions as the starting
// point; several toggles default to true.
type Options struct {
	// Sentences are staged into a temp file, one per line. Mutually
	// exclusive with Filename.
	Sentences []string

	// IDs pairs an identifier with each sentence. When set, its length
	// must match Sentences.
	IDs []string

	// Filename is a pre-formatted input file used as-is. It is never
	// modified or deleted.
	Filename string

	// FileFormat describes Filename. Empty means FormatSLDI.
	FileFormat FileFormat

	// FoldASCII strips diacritics and replaces other non-ASCII runes with
	// spaces before staging Sentences. MetaMap only accepts ASCII input.
	FoldASCII bool

	CompositePhrase         int
	WordSenseDisambiguation bool
	AllowLargeN             bool
	RestrictToVocabularies  []string
	NoDerivationalVariants  bool
	DerivationalVariants    bool
	AllowConceptGaps        bool
	IgnoreWordOrder         bool
	AllowAcronymVariants    bool
	UniqueAcronymVariants   bool
	PreferMultipleConcepts  bool
	IgnoreStopPhrases       bool
	ComputeAllMappings      bool

	// AdditionalOptions are appended to the command line verbatim, after
	// the mapped flags.
	AdditionalOptions []string
}

// DefaultOptions returns the default extraction settings with no input
// selected.
func DefaultOptions() Options {
	return Options{
		FileFormat:              FormatSLDI,
		CompositePhrase:         DefaultCompositePhrase,
		WordSenseDisambiguation: true,
		RestrictToVocabularies:  []string{"SNOMEDCT_US"},
		AllowConceptGaps:        true,
		IgnoreStopPhrases:       true,
	}
}

// hasSentences reports whether in-memory input was supplied.
func (o *Options) hasSentences() bool {
	return len(o.Sentences) > 0
}

// format returns FileFormat with the empty value resolved to FormatSLDI.
func (o *Options) format() FileFormat {
	if o.FileFormat == "" {
		return FormatSLDI
	}
	return o.FileFormat
}

// withIDs reports whether MetaMap should expect "id|text" input lines.
func (o *Options) withIDs() bool {
	if len(o.IDs) > 0 {
		return true
	}
	return o.format() == FormatSLDIID && !o.hasSentences()
}

// Validate reports configuration errors. It touches no files.
func (o *Options) Validate() error {
	if o.hasSentences() == (o.Filename != "") {
		return invalid("provide either sentences or a filename, not both or neither")
	}
	if o.AllowAcronymVariants && o.UniqueAcronymVariants {
		return invalid("allow acronym variants and unique acronym variants are mutually exclusive")
	}
	switch o.format() {
	case FormatSLDI, FormatSLDIID:
	default:
		return invalid(fmt.Sprintf("file format %q must be %s or %s", o.FileFormat, FormatSLDI, FormatSLDIID))
	}
	if o.CompositePhrase < 0 {
		return invalid(fmt.Sprintf("composite phrase %d must not be negative", o.CompositePhrase))
	}
	if len(o.IDs) > 0 {
		if !o.hasSentences() {
			return invalid("ids require sentences")
		}
		if len(o.IDs) != len(o.Sentences) {
			return invalid(fmt.Sprintf("got %d ids for %d sentences", len(o.IDs), len(o.Sentences)))
		}
		for i, id := range o.IDs {
			if strings.ContainsAny(id, "|\r\n") {
				return invalid(fmt.Sprintf("id %d %q contains a separator or line break", i, id))
			}
		}
	}
	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidOptions, msg)
}
