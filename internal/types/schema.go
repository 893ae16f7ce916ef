package types

// VocabularyFile is the top-level structure of a vocabulary overlay. An
// overlay adds namespaces to one SAMM version's own namespace table, for
// example company prefixes that should be compacted in reports.
//
// Overlays never replace built-in prefixes: entries colliding with an
// already registered prefix are ignored.
type VocabularyFile struct {
	// VocabularyVersion identifies the file format version.
	VocabularyVersion string `yaml:"vocabulary_version"`

	// Version selects the SAMM version the namespaces are added to.
	// Empty means every registered version.
	Version string `yaml:"version,omitempty"`

	// Namespaces are added in file order. Prefixes may be written with
	// or without the trailing colon.
	Namespaces []NamespaceItem `yaml:"namespaces"`
}
