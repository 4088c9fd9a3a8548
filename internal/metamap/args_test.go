// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metamap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildArgsDefaults(t *testing.T) {
	o := DefaultOptions()
	o.Sentences = []string{"Fever and cough."}

	got := BuildArgs(o, "in.txt", "out.txt")
	want := []string{"-N", "-Q", "4", "-y", "-R SNOMEDCT_US", "-g", "-K", "--sldi", "in.txt", "out.txt"}
	assert.Equal(t, want, got)
}

func TestBuildArgsEveryFlag(t *testing.T) {
	o := Options{
		Sentences:               []string{"x"},
		CompositePhrase:         8,
		WordSenseDisambiguation: true,
		AllowLargeN:             true,
		RestrictToVocabularies:  []string{"SNOMEDCT_US", "MSH"},
		NoDerivationalVariants:  true,
		DerivationalVariants:    true,
		AllowConceptGaps:        true,
		IgnoreWordOrder:         true,
		AllowAcronymVariants:    true,
		PreferMultipleConcepts:  true,
		IgnoreStopPhrases:       true,
		ComputeAllMappings:      true,
		AdditionalOptions:       []string{"--silent", "-V", "USAbase"},
	}

	got := BuildArgs(o, "in", "out")
	want := []string{
		"-N", "-Q", "8",
		"-y", "-l", "-R SNOMEDCT_US,MSH", "-d", "-D", "-g", "-i", "-a", "-Y", "-K", "-b",
		"--silent", "-V", "USAbase",
		"--sldi", "in", "out",
	}
	assert.Equal(t, want, got)
}

func TestBuildArgsNoToggles(t *testing.T) {
	o := Options{Filename: "f.txt"}
	got := BuildArgs(o, "f.txt", "out")
	assert.Equal(t, []string{"-N", "-Q", "0", "--sldi", "f.txt", "out"}, got)
}

func TestBuildArgsUniqueAcronyms(t *testing.T) {
	o := Options{Sentences: []string{"x"}, UniqueAcronymVariants: true}
	got := BuildArgs(o, "in", "out")
	assert.Contains(t, got, "-u")
	assert.NotContains(t, got, "-a")
}

func TestBuildArgsIdentifierMode(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *Options)
		want   string
		absent string
	}{
		{
			name: "sentences with ids",
			modify: func(o *Options) {
				o.Sentences = []string{"Fever and cough."}
				o.IDs = []string{"id1"}
			},
			want:   "--sldiID",
			absent: "--sldi",
		},
		{
			name: "sentences without ids",
			modify: func(o *Options) {
				o.Sentences = []string{"Fever and cough."}
			},
			want:   "--sldi",
			absent: "--sldiID",
		},
		{
			name: "file with sldiID format",
			modify: func(o *Options) {
				o.Filename = "in.txt"
				o.FileFormat = FormatSLDIID
			},
			want:   "--sldiID",
			absent: "--sldi",
		},
		{
			name: "file with sldi format",
			modify: func(o *Options) {
				o.Filename = "in.txt"
			},
			want:   "--sldi",
			absent: "--sldiID",
		},
		{
			name: "sentences ignore sldiID format without ids",
			modify: func(o *Options) {
				o.Sentences = []string{"x"}
				o.FileFormat = FormatSLDIID
			},
			want:   "--sldi",
			absent: "--sldiID",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.modify(&o)
			got := BuildArgs(o, "in.txt", "out.txt")
			assert.Contains(t, got, tt.want)
			assert.NotContains(t, got, tt.absent)
			assert.Equal(t, []string{tt.want, "in.txt", "out.txt"}, got[len(got)-3:])
		})
	}
}

func TestBuildArgsEmptyVocabularyList(t *testing.T) {
	o := DefaultOptions()
	o.Sentences = []string{"x"}
	o.RestrictToVocabularies = nil

	for _, a := range BuildArgs(o, "in", "out") {
		assert.NotContains(t, a, "-R")
	}
}

func TestEnabledOptions(t *testing.T) {
	o := DefaultOptions()
	got := enabledOptions(&o)
	assert.Equal(t, []string{
		"word_sense_disambiguation",
		"restrict_to_vocabularies",
		"allow_concept_gaps",
		"ignore_stop_phrases",
	}, got)
}
