package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samm-registry/internal/adapters"
	"samm-registry/internal/core"
	"samm-registry/internal/types"
	"samm-registry/tests/testutil"
)

// TestDetectThenCompactFlow exercises the document workflow a model tool
// follows:
//
//	read prefixes -> detect version -> apply overlay -> compact element URNs
func TestDetectThenCompactFlow(t *testing.T) {
	registry, err := core.NewDefaultRegistry(t.Context())
	require.NoError(t, err)

	// Step 1: Read the document prefixes.
	items, err := adapters.NewTurtlePrefixAdapter().ReadNamespaces(testutil.Fixture(t, "movement-v2.ttl"))
	require.NoError(t, err)
	external := core.NamespaceMapOf(items...)

	// Step 2: Detect the version.
	set, ok := registry.DetectVersion(external)
	require.True(t, ok)
	assert.Equal(t, types.SammVersionV2, set.Version)

	// Step 3: Apply an overlay for the model's own namespace.
	vocabulary, err := adapters.NewVocabularyFileAdapter().LoadVocabulary(testutil.Fixture(t, "vocabulary.yaml"))
	require.NoError(t, err)
	added, ignored, err := registry.MergeNamespaces(set.Version, core.NamespaceMapOf(vocabulary.Namespaces...))
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	require.Len(t, ignored, 1)
	assert.Equal(t, "samm:", ignored[0].Prefix)
	assert.False(t, set.SelfNamespaces.ContainsPrefix("ex:"), "the detected set is not modified in place")
	set, ok = registry.ForVersion(types.SammVersionV2)
	require.True(t, ok)

	// Step 4: Round-trip element URNs through the set.
	measurement, ok := set.URNForKind(types.ElementKindMeasurement)
	require.True(t, ok)
	assert.Equal(t, "samm-c:Measurement", set.SelfNamespaces.PrefixURI(measurement))
	assert.Equal(t, "ex:speed", set.SelfNamespaces.PrefixURI("urn:samm:org.example.movement:1.0.0#speed"))

	kind, ok := set.TypeFromURN("samm-c:Measurement")
	require.True(t, ok)
	assert.Equal(t, types.ElementKindMeasurement, kind)

	// The document itself declared the empty prefix for the same namespace.
	own, ok := external.GetFromPrefix(":")
	require.True(t, ok)
	assert.Equal(t, ":speed", external.PrefixURI(own.URI+"speed"))
}

// TestDocumentCollectionPredicates checks the list markers a model parser
// needs after detection.
func TestDocumentCollectionPredicates(t *testing.T) {
	registry, err := core.NewDefaultRegistry(t.Context())
	require.NoError(t, err)

	for _, tt := range []struct {
		file     string
		property string
	}{
		{"movement-v1.ttl", core.NamespaceBammMetaModel + "property"},
		{"movement-v2.ttl", core.NamespaceSammMetaModel + "property"},
	} {
		items, err := adapters.NewTurtlePrefixAdapter().ReadNamespaces(testutil.Fixture(t, tt.file))
		require.NoError(t, err)
		set, ok := registry.DetectVersion(core.NamespaceMapOf(items...))
		require.True(t, ok, tt.file)
		assert.Equal(t, tt.property, set.SammProperty)
		assert.Equal(t, "http://www.w3.org/1999/02/22-rdf-syntax-ns#first", set.RdfCollectionFirst)
	}
}
