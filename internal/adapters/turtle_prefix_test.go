package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samm-registry/internal/types"
)

const sampleAspect = `# Copyright example
@prefix samm: <urn:samm:org.eclipse.esmf.samm:meta-model:2.0.0#> .
@prefix samm-c: <urn:samm:org.eclipse.esmf.samm:characteristic:2.0.0#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix : <urn:samm:com.example:1.0.0#> .
PREFIX unit: <urn:samm:org.eclipse.esmf.samm:unit:2.0.0#>

:Movement a samm:Aspect ;
   samm:properties ( :speed ) .
`

func TestParseTurtlePrefixes(t *testing.T) {
	items, err := ParseTurtlePrefixes(sampleAspect)
	require.NoError(t, err)

	expected := []types.NamespaceItem{
		{Prefix: "samm:", URI: "urn:samm:org.eclipse.esmf.samm:meta-model:2.0.0#"},
		{Prefix: "samm-c:", URI: "urn:samm:org.eclipse.esmf.samm:characteristic:2.0.0#"},
		{Prefix: "xsd:", URI: "http://www.w3.org/2001/XMLSchema#"},
		{Prefix: ":", URI: "urn:samm:com.example:1.0.0#"},
		{Prefix: "unit:", URI: "urn:samm:org.eclipse.esmf.samm:unit:2.0.0#"},
	}
	if diff := cmp.Diff(expected, items); diff != "" {
		t.Fatalf("unexpected prefixes (-want +got):\n%s", diff)
	}
}

func TestParseTurtlePrefixesCases(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []types.NamespaceItem
		wantErr bool
	}{
		{
			name:    "lower case sparql keyword",
			content: "prefix ex: <http://example.com/>\n",
			want:    []types.NamespaceItem{{Prefix: "ex:", URI: "http://example.com/"}},
		},
		{
			name:    "crlf line endings",
			content: "@prefix ex: <http://example.com/> .\r\n",
			want:    []types.NamespaceItem{{Prefix: "ex:", URI: "http://example.com/"}},
		},
		{
			name:    "commented directive ignored",
			content: "# @prefix ex: <http://example.com/> .\n",
		},
		{
			name:    "prefixed subject is not a directive",
			content: "prefix:thing a prefix:Other .\n",
		},
		{
			name:    "two directives on one line",
			content: "@prefix a: <http://a/> . @prefix b: <http://b/> .\n",
			want: []types.NamespaceItem{
				{Prefix: "a:", URI: "http://a/"},
				{Prefix: "b:", URI: "http://b/"},
			},
		},
		{
			name:    "two sparql directives on one line",
			content: "PREFIX a: <http://a/> PREFIX b: <http://b/>\n",
			want: []types.NamespaceItem{
				{Prefix: "a:", URI: "http://a/"},
				{Prefix: "b:", URI: "http://b/"},
			},
		},
		{
			name: "directive word inside long literal",
			content: "@prefix samm: <urn:samm:org.eclipse.esmf.samm:meta-model:2.0.0#> .\n" +
				":serial a samm:Property ;\n" +
				"   samm:description \"\"\"The serial number.\n" +
				"Prefix and suffix are stripped.\"\"\"@en .\n" +
				"@prefix ex: <http://example.com/> .\n",
			want: []types.NamespaceItem{
				{Prefix: "samm:", URI: "urn:samm:org.eclipse.esmf.samm:meta-model:2.0.0#"},
				{Prefix: "ex:", URI: "http://example.com/"},
			},
		},
		{
			name: "single quoted long literal with short quotes inside",
			content: ":x samm:description '''It's \"fine\"\n" +
				"@prefix bogus: nothing\n" +
				"''' .\n" +
				"@prefix ex: <http://example.com/> .\n",
			want: []types.NamespaceItem{{Prefix: "ex:", URI: "http://example.com/"}},
		},
		{
			name:    "short literal with triple quote characters stays closed",
			content: ":x rdfs:label \"a ''' b\" .\n@prefix ex: <http://example.com/> .\n",
			want:    []types.NamespaceItem{{Prefix: "ex:", URI: "http://example.com/"}},
		},
		{
			name:    "missing terminating dot",
			content: "@prefix ex: <http://example.com/>\n",
			wantErr: true,
		},
		{
			name:    "missing angle brackets",
			content: "@prefix ex: http://example.com/ .\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseTurtlePrefixes(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, items)
		})
	}
}

func TestTurtlePrefixAdapterReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Movement.ttl")
	require.NoError(t, os.WriteFile(path, []byte(sampleAspect), 0644))

	items, err := NewTurtlePrefixAdapter().ReadNamespaces(path)
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestTurtlePrefixAdapterMissingFile(t *testing.T) {
	_, err := NewTurtlePrefixAdapter().ReadNamespaces(filepath.Join(t.TempDir(), "missing.ttl"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
