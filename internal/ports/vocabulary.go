package ports

import "samm-registry/internal/types"

// VocabularyPort loads vocabulary overlays that add namespaces to a SAMM
// version's own prefix table.
type VocabularyPort interface {
	// LoadVocabulary reads and validates one overlay file.
	LoadVocabulary(path string) (types.VocabularyFile, error)
}
