package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"samm-registry/internal/core"
)

// ApplyVocabulary merges an overlay file into the own namespaces of the
// targeted versions and returns how many prefixes were added. Prefixes
// already known to a version are left untouched. Lookups may run while
// an overlay is applied; each version is swapped in as a whole.
func (s Service) ApplyVocabulary(ctx context.Context, path string) (int, error) {
	vocabulary, err := s.Vocabulary.LoadVocabulary(path)
	if err != nil {
		return 0, err
	}
	sets := s.Registry.Sets()
	if vocabulary.Version != "" {
		set, err := s.resolveSet(vocabulary.Version)
		if err != nil {
			return 0, err
		}
		sets = []*core.IDSet{set}
	}

	overlay := core.NamespaceMapOf(vocabulary.Namespaces...)
	total := 0
	for _, set := range sets {
		added, ignored, err := s.Registry.MergeNamespaces(set.Version, overlay)
		if err != nil {
			return total, err
		}
		total += added
		for _, item := range ignored {
			log.Warn().
				Str("version", string(set.Version)).
				Str("prefix", item.Prefix).
				Str("vocabulary_version", vocabulary.VocabularyVersion).
				Msg("vocabulary prefix already registered; ignored")
		}
	}
	log.Debug().
		Str("path", path).
		Int("added", total).
		Msg("vocabulary applied")
	return total, nil
}
