package app

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samm-registry/internal/core"
	"samm-registry/internal/types"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(t.Context())
	require.NoError(t, err)
	return svc
}

func fixture(name string) string {
	return filepath.Join("..", "..", "fixtures", name)
}

func TestDetect(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		file        string
		version     types.SammVersion
		exact       bool
		docVersion  string
		prefixCount int
	}{
		{"movement-v1.ttl", types.SammVersionV1, true, "1.0.0", 7},
		{"movement-v2.ttl", types.SammVersionV2, true, "2.0.0", 6},
		{"movement-v2.1.ttl", types.SammVersionV2, false, "2.1.0", 4},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			report, err := svc.Detect(t.Context(), DetectRequest{Path: fixture(tt.file)})
			require.NoError(t, err)
			assert.Equal(t, tt.version, report.Version)
			assert.Equal(t, tt.exact, report.Exact)
			assert.Equal(t, tt.docVersion, report.DocumentVersion)
			assert.Len(t, report.Prefixes, tt.prefixCount)
		})
	}
}

func TestDetectFailures(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Detect(t.Context(), DetectRequest{Path: fixture("unknown.ttl")})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	_, err = svc.Detect(t.Context(), DetectRequest{Path: fixture("missing.ttl")})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	_, err = svc.Detect(t.Context(), DetectRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestExpand(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.Expand(t.Context(), ExpandRequest{
		Version: "v1",
		Terms:   []string{"bamm:Aspect", "bamm-c:Trait", "ex:Thing"},
	})
	require.NoError(t, err)
	want := types.TermReport{
		Version: types.SammVersionV1,
		Mappings: []types.TermMapping{
			{Input: "bamm:Aspect", Output: core.NamespaceBammMetaModel + "Aspect", Mapped: true},
			{Input: "bamm-c:Trait", Output: core.NamespaceBammCharacteristic + "Trait", Mapped: true},
			{Input: "ex:Thing", Output: "ex:Thing", Mapped: false},
		},
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Fatalf("unexpected expansion (-want +got):\n%s", diff)
	}

	_, err = svc.Expand(t.Context(), ExpandRequest{Version: "v9", Terms: []string{"x:y"}})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = svc.Expand(t.Context(), ExpandRequest{Version: "v2"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestExpandDefaultsToLatestVersion(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.Expand(t.Context(), ExpandRequest{Terms: []string{"samm:Property"}})
	require.NoError(t, err)
	assert.Equal(t, types.SammVersionV2, report.Version)
	assert.Equal(t, core.NamespaceSammMetaModel+"Property", report.Mappings[0].Output)
}

func TestCompact(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.Compact(t.Context(), CompactRequest{
		Version: "v2",
		URIs:    []string{core.NamespaceSammCharacteristic + "Enumeration", "http://schema.org/name"},
	})
	require.NoError(t, err)
	assert.Equal(t, "samm-c:Enumeration", report.Mappings[0].Output)
	assert.False(t, report.Mappings[1].Mapped)

	report, err = svc.Compact(t.Context(), CompactRequest{
		Version:  "v2",
		URIs:     []string{"http://schema.org/name"},
		Standard: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "schema:name", report.Mappings[0].Output)
	assert.True(t, report.Mappings[0].Mapped)

	set, ok := svc.Registry.ForVersion(types.SammVersionV2)
	require.True(t, ok)
	assert.False(t, set.SelfNamespaces.ContainsPrefix("schema:"), "standard prefixes must not leak into the set")
}

func TestLookup(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.Lookup(t.Context(), LookupRequest{Term: "samm:AbstractEntity"})
	require.NoError(t, err)
	want := types.ElementEntry{
		Kind:    types.ElementKindAbstractEntity,
		Name:    "AbstractEntity",
		URN:     core.NamespaceSammMetaModel + "AbstractEntity",
		Version: types.SammVersionV2,
	}
	if diff := cmp.Diff(want, entry); diff != "" {
		t.Fatalf("unexpected entry (-want +got):\n%s", diff)
	}

	entry, err = svc.Lookup(t.Context(), LookupRequest{Term: core.NamespaceBammCharacteristic + "Trait"})
	require.NoError(t, err)
	assert.Equal(t, types.SammVersionV1, entry.Version)
	assert.Equal(t, types.ElementKindTrait, entry.Kind)

	_, err = svc.Lookup(t.Context(), LookupRequest{Term: "bamm:AbstractEntity"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	_, err = svc.Lookup(t.Context(), LookupRequest{Term: "  "})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestElements(t *testing.T) {
	svc := newTestService(t)

	all, err := svc.Elements(t.Context(), ElementsRequest{})
	require.NoError(t, err)
	v2, err := svc.Elements(t.Context(), ElementsRequest{Version: "samm"})
	require.NoError(t, err)
	v1, err := svc.Elements(t.Context(), ElementsRequest{Version: "bamm"})
	require.NoError(t, err)

	assert.Len(t, all.Elements, len(v1.Elements)+len(v2.Elements))
	assert.Equal(t, len(v1.Elements)+1, len(v2.Elements), "abstract entity is the only v2 addition")
	for _, entry := range v2.Elements {
		assert.Equal(t, types.SammVersionV2, entry.Version)
		assert.NotEmpty(t, entry.URN)
	}
}

func TestNamespaces(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.Namespaces(t.Context(), NamespacesRequest{Version: "v1"})
	require.NoError(t, err)
	assert.Equal(t, "bamm:", report.Detector.Prefix)
	require.Len(t, report.Namespaces, 7)
	assert.Equal(t, types.NamespaceItem{Prefix: "bamm:", URI: core.NamespaceBammMetaModel}, report.Namespaces[0])
}

func TestApplyVocabulary(t *testing.T) {
	svc := newTestService(t)

	added, err := svc.ApplyVocabulary(t.Context(), fixture("vocabulary.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	v2, _ := svc.Registry.ForVersion(types.SammVersionV2)
	item, ok := v2.SelfNamespaces.GetFromPrefix("samm:")
	require.True(t, ok)
	assert.Equal(t, core.NamespaceSammMetaModel, item.URI, "built-in prefix must survive the overlay")
	assert.True(t, v2.SelfNamespaces.ContainsPrefix("ex:"))

	v1, _ := svc.Registry.ForVersion(types.SammVersionV1)
	assert.False(t, v1.SelfNamespaces.ContainsPrefix("ex:"))

	report, err := svc.Compact(t.Context(), CompactRequest{
		Version: "v2",
		URIs:    []string{"urn:samm:org.example.movement:1.0.0#speed"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ex:speed", report.Mappings[0].Output)
}

func TestApplyVocabularyAllVersions(t *testing.T) {
	svc := newTestService(t)
	path := filepath.Join(t.TempDir(), "vocabulary.yaml")
	writeFile(t, path, "vocabulary_version: \"1\"\nnamespaces:\n  - prefix: acme\n    uri: \"urn:acme:models#\"\n")

	added, err := svc.ApplyVocabulary(t.Context(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
}

func TestApplyVocabularyConcurrentWithLookups(t *testing.T) {
	svc := newTestService(t)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := svc.ApplyVocabulary(t.Context(), fixture("vocabulary.yaml"))
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			entry, err := svc.Lookup(t.Context(), LookupRequest{Term: "samm:Property"})
			assert.NoError(t, err)
			assert.Equal(t, types.ElementKindProperty, entry.Kind)
		}
	}()
	wg.Wait()

	v2, _ := svc.Registry.ForVersion(types.SammVersionV2)
	assert.True(t, v2.SelfNamespaces.ContainsPrefix("ex:"))
}

func TestLookupFullURNWithSchemePrefixOverlay(t *testing.T) {
	svc := newTestService(t)
	path := filepath.Join(t.TempDir(), "vocabulary.yaml")
	writeFile(t, path, "vocabulary_version: \"1\"\nversion: v2\nnamespaces:\n  - prefix: urn\n    uri: \"http://example.com/urn/\"\n")

	added, err := svc.ApplyVocabulary(t.Context(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	entry, err := svc.Lookup(t.Context(), LookupRequest{Term: core.NamespaceSammMetaModel + "Property"})
	require.NoError(t, err)
	assert.Equal(t, types.SammVersionV2, entry.Version)
}
