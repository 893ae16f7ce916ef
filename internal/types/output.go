package types

type DetectionReport struct {
	Path            string          `yaml:"path" json:"path"`
	Version         SammVersion     `yaml:"version" json:"version"`
	Detector        NamespaceItem   `yaml:"detector" json:"detector"`
	Exact           bool            `yaml:"exact" json:"exact"`
	DocumentVersion string          `yaml:"document_version,omitempty" json:"document_version,omitempty"`
	Prefixes        []NamespaceItem `yaml:"prefixes" json:"prefixes"`
}

type TermMapping struct {
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`
	Mapped bool   `yaml:"mapped" json:"mapped"`
}

type TermReport struct {
	Version  SammVersion   `yaml:"version" json:"version"`
	Mappings []TermMapping `yaml:"mappings" json:"mappings"`
}

type ElementEntry struct {
	Kind    ElementKind `yaml:"kind" json:"kind"`
	Name    string      `yaml:"name" json:"name"`
	URN     string      `yaml:"urn" json:"urn"`
	Version SammVersion `yaml:"version" json:"version"`
}

type ElementReport struct {
	Elements []ElementEntry `yaml:"elements" json:"elements"`
}

type NamespaceReport struct {
	Version    SammVersion     `yaml:"version" json:"version"`
	Detector   NamespaceItem   `yaml:"detector" json:"detector"`
	Namespaces []NamespaceItem `yaml:"namespaces" json:"namespaces"`
}
