// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metamap

import (
	"strconv"
	"strings"
)

const (
	flagFielded         = "-N"
	flagCompositePhrase = "-Q"
	flagSLDI            = "--sldi"
	flagSLDIID          = "--sldiID"
)

// flagRule maps one option to a MetaMap flag. When value is set, the flag
// and its value form a single argument ("-R A,B").
type flagRule struct {
	option string
	flag   string
	when   func(*Options) bool
	value  func(*Options) string
}

func (r flagRule) render(o *Options) string {
	if r.value == nil {
		return r.flag
	}
	return r.flag + " " + r.value(o)
}

// flagRules is ordered as MetaMap receives the flags.
var flagRules = []flagRule{
	{option: "word_sense_disambiguation", flag: "-y", when: func(o *Options) bool { return o.WordSenseDisambiguation }},
	{option: "allow_large_n", flag: "-l", when: func(o *Options) bool { return o.AllowLargeN }},
	{
		option: "restrict_to_vocabularies",
		flag:   "-R",
		when:   func(o *Options) bool { return len(o.RestrictToVocabularies) > 0 },
		value:  func(o *Options) string { return strings.Join(o.RestrictToVocabularies, ",") },
	},
	{option: "no_derivational_variants", flag: "-d", when: func(o *Options) bool { return o.NoDerivationalVariants }},
	{option: "derivational_variants", flag: "-D", when: func(o *Options) bool { return o.DerivationalVariants }},
	{option: "allow_concept_gaps", flag: "-g", when: func(o *Options) bool { return o.AllowConceptGaps }},
	{option: "ignore_word_order", flag: "-i", when: func(o *Options) bool { return o.IgnoreWordOrder }},
	{option: "allow_acronym_variants", flag: "-a", when: func(o *Options) bool { return o.AllowAcronymVariants }},
	{option: "unique_acronym_variants", flag: "-u", when: func(o *Options) bool { return o.UniqueAcronymVariants }},
	{option: "prefer_multiple_concepts", flag: "-Y", when: func(o *Options) bool { return o.PreferMultipleConcepts }},
	{option: "ignore_stop_phrases", flag: "-K", when: func(o *Options) bool { return o.IgnoreStopPhrases }},
	{option: "compute_all_mappings", flag: "-b", when: func(o *Options) bool { return o.ComputeAllMappings }},
}

// BuildArgs returns the MetaMap argument list, excluding the binary, for
// the given options and file paths. Input and output paths are always the
// final two arguments.
func BuildArgs(o Options, inputPath, outputPath string) []string {
	args := []string{flagFielded, flagCompositePhrase, strconv.Itoa(o.CompositePhrase)}
	for _, r := range flagRules {
		if r.when(&o) {
			args = append(args, r.render(&o))
		}
	}
	args = append(args, o.AdditionalOptions...)
	if o.withIDs() {
		args = append(args, flagSLDIID)
	} else {
		args = append(args, flagSLDI)
	}
	return append(args, inputPath, outputPath)
}

// enabledOptions names the flag-mapped options that are switched on.
func enabledOptions(o *Options) []string {
	var names []string
	for _, r := range flagRules {
		if r.when(o) {
			names = append(names, r.option)
		}
	}
	return names
}
