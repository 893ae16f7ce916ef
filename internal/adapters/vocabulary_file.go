package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"samm-registry/internal/ports"
	"samm-registry/internal/shared"
	"samm-registry/internal/types"
)

// VocabularyFileAdapter loads vocabulary overlays from YAML files.
type VocabularyFileAdapter struct{}

func NewVocabularyFileAdapter() VocabularyFileAdapter {
	return VocabularyFileAdapter{}
}

// LoadVocabulary reads an overlay and normalizes its prefixes so each
// carries its trailing colon.
func (a VocabularyFileAdapter) LoadVocabulary(path string) (types.VocabularyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.VocabularyFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read vocabulary file: " + path).
			WithCause(err)
	}

	var vocabulary types.VocabularyFile
	if err := yaml.Unmarshal(data, &vocabulary); err != nil {
		return types.VocabularyFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse vocabulary file: " + path).
			WithCause(err)
	}

	if strings.TrimSpace(vocabulary.VocabularyVersion) == "" {
		return types.VocabularyFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("vocabulary file missing vocabulary_version: " + path)
	}

	if vocabulary.Version != "" {
		version, ok := types.ParseSammVersion(vocabulary.Version)
		if !ok {
			return types.VocabularyFile{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("vocabulary file has unknown version '%s': %s", vocabulary.Version, path))
		}
		vocabulary.Version = string(version)
	}

	for i, item := range vocabulary.Namespaces {
		if strings.TrimSpace(item.Prefix) == "" || strings.TrimSpace(item.URI) == "" {
			return types.VocabularyFile{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("vocabulary namespace %d needs prefix and uri in %s", i, path))
		}
		vocabulary.Namespaces[i] = types.NamespaceItem{
			Prefix: shared.PrefixToken(item.Prefix),
			URI:    strings.TrimSpace(item.URI),
		}
	}

	return vocabulary, nil
}

var _ ports.VocabularyPort = VocabularyFileAdapter{}
