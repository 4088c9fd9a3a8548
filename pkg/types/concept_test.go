// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConceptFieldsOrder(t *testing.T) {
	c := Concept{
		Index: "1", MM: "mm", Score: "2", PreferredName: "Name", CUI: "C001",
		SemTypes: "sty", Trigger: "trig", Location: "loc", PosInfo: "pos", TreeCodes: "tree",
	}
	want := [NumFields]string{"1", "mm", "2", "Name", "C001", "sty", "trig", "loc", "pos", "tree"}
	assert.Equal(t, want, c.Fields())
	assert.Equal(t, c, ConceptFromFields(want))
}

func TestConceptString(t *testing.T) {
	tests := []struct {
		name string
		c    Concept
		want string
	}{
		{
			name: "omits empty fields",
			c:    Concept{Index: "USER", CUI: "C0015967", PreferredName: "Fever"},
			want: `Concept(index="USER", preferred_name="Fever", cui="C0015967")`,
		},
		{
			name: "empty concept",
			c:    Concept{},
			want: "Concept()",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.String())
		})
	}
}

func TestCorpusCUIs(t *testing.T) {
	corpus := Corpus{
		{CUI: "C2"},
		{CUI: "C1"},
		{CUI: "C2"},
		{CUI: ""},
		{CUI: "C3"},
	}
	assert.Equal(t, []string{"C2", "C1", "C3"}, corpus.CUIs())
	assert.Nil(t, Corpus{}.CUIs())
}

func TestMetaMapConfigBinaryOrDefault(t *testing.T) {
	assert.Equal(t, "metamap", MetaMapConfig{}.BinaryOrDefault())
	assert.Equal(t, "/opt/public_mm/bin/metamap20", MetaMapConfig{Binary: "/opt/public_mm/bin/metamap20"}.BinaryOrDefault())
}
