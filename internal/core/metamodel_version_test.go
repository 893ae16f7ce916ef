package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseMetaModelURN(t *testing.T) {
	tests := []struct {
		input string
		want  MetaModelURN
		ok    bool
	}{
		{NamespaceSammMetaModel, MetaModelURN{"samm", "org.eclipse.esmf.samm", "meta-model", "2.0.0"}, true},
		{NamespaceBammCharacteristic, MetaModelURN{"bamm", "io.openmanufacturing", "characteristic", "1.0.0"}, true},
		{"urn:samm:org.eclipse.esmf.samm:meta-model:2.1.0", MetaModelURN{"samm", "org.eclipse.esmf.samm", "meta-model", "2.1.0"}, true},
		{"http://www.w3.org/2001/XMLSchema#", MetaModelURN{}, false},
		{"urn:samm:meta-model:2.0.0#", MetaModelURN{}, false},
		{"urn:samm::meta-model:2.0.0#", MetaModelURN{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseMetaModelURN(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("unexpected urn for %s (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestCompatibleSetPicksHighestNotAbove(t *testing.T) {
	v2 := mustSet(t, "v2")
	doc, _ := ParseMetaModelURN("urn:samm:org.eclipse.esmf.samm:meta-model:2.0.5#")

	set, ok := compatibleSet(doc, []*IDSet{mustSet(t, "v1"), v2})
	assert.True(t, ok)
	assert.Same(t, v2, set)

	bad := MetaModelURN{Family: "samm", Namespace: "org.eclipse.esmf.samm", Element: "meta-model", Version: "not a version"}
	_, ok = compatibleSet(bad, []*IDSet{v2})
	assert.False(t, ok)
}
