package core

import (
	"context"
	"fmt"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
	"github.com/rs/zerolog/log"

	"samm-registry/internal/types"
)

const (
	NamespaceXSD = "http://www.w3.org/2001/XMLSchema#"

	NamespaceBammMetaModel      = "urn:bamm:io.openmanufacturing:meta-model:1.0.0#"
	NamespaceBammCharacteristic = "urn:bamm:io.openmanufacturing:characteristic:1.0.0#"
	NamespaceBammEntity         = "urn:bamm:io.openmanufacturing:entity:1.0.0#"
	NamespaceBammUnit           = "urn:bamm:io.openmanufacturing:unit:1.0.0#"

	NamespaceSammMetaModel      = "urn:samm:org.eclipse.esmf.samm:meta-model:2.0.0#"
	NamespaceSammCharacteristic = "urn:samm:org.eclipse.esmf.samm:characteristic:2.0.0#"
	NamespaceSammEntity         = "urn:samm:org.eclipse.esmf.samm:entity:2.0.0#"
	NamespaceSammUnit           = "urn:samm:org.eclipse.esmf.samm:unit:2.0.0#"
)

// SkippedElement records an element the registry could not index.
type SkippedElement struct {
	Kind   types.ElementKind
	Reason string
}

// IDSet is the dialect of one SAMM version: its well-known URNs, its own
// namespace prefixes and the URN <-> element kind indices built by Init.
type IDSet struct {
	Version types.SammVersion

	// Detector recognizes this version among externally declared prefixes.
	Detector types.NamespaceItem

	SelfNamespaces *NamespaceMap

	// RDF list markers used when collections are encoded as rdf:List.
	RdfCollectionFirst string
	RdfCollectionRest  string
	RdfCollectionNil   string

	// Predicates wrapping list members in aspect and entity property lists.
	SammProperty string
	SammOptional string

	urnToKind   map[string]types.ElementKind
	kindToName  map[types.ElementKind]string
	kindToURN   map[types.ElementKind]string
	skipped     []SkippedElement
	initialized bool
}

// NewIDSet returns the version 1 (BAMM) dialect. Call SwitchToVersion to
// obtain another version, then Init to build the lookup indices.
func NewIDSet() *IDSet {
	return &IDSet{
		Version:            types.SammVersionV1,
		Detector:           types.NamespaceItem{Prefix: "bamm:", URI: NamespaceBammMetaModel},
		SelfNamespaces:     v1Namespaces(),
		RdfCollectionFirst: rdf.NS + "first",
		RdfCollectionRest:  rdf.NS + "rest",
		RdfCollectionNil:   rdf.NS + "nil",
		SammProperty:       NamespaceBammMetaModel + "property",
		SammOptional:       NamespaceBammMetaModel + "optional",
	}
}

func v1Namespaces() *NamespaceMap {
	return NamespaceMapOf(
		types.NamespaceItem{Prefix: "bamm:", URI: NamespaceBammMetaModel},
		types.NamespaceItem{Prefix: "bamm-c:", URI: NamespaceBammCharacteristic},
		types.NamespaceItem{Prefix: "bamm-e:", URI: NamespaceBammEntity},
		types.NamespaceItem{Prefix: "unit:", URI: NamespaceBammUnit},
		types.NamespaceItem{Prefix: rdf.Prefix, URI: rdf.NS},
		types.NamespaceItem{Prefix: rdfs.Prefix, URI: rdfs.NS},
		types.NamespaceItem{Prefix: "xsd:", URI: NamespaceXSD},
	)
}

func v2Namespaces() *NamespaceMap {
	return NamespaceMapOf(
		types.NamespaceItem{Prefix: "samm:", URI: NamespaceSammMetaModel},
		types.NamespaceItem{Prefix: "samm-c:", URI: NamespaceSammCharacteristic},
		types.NamespaceItem{Prefix: "samm-e:", URI: NamespaceSammEntity},
		types.NamespaceItem{Prefix: "unit:", URI: NamespaceSammUnit},
		types.NamespaceItem{Prefix: rdf.Prefix, URI: rdf.NS},
		types.NamespaceItem{Prefix: rdfs.Prefix, URI: rdfs.NS},
		types.NamespaceItem{Prefix: "xsd:", URI: NamespaceXSD},
	)
}

// SwitchToVersion turns the set into the dialect of target and returns it.
// V1 is a no-op. V2 rewrites the two collection predicates and replaces
// SelfNamespaces and Detector. Indices from an earlier Init are dropped.
// Unknown targets return false and leave the set untouched.
func (s *IDSet) SwitchToVersion(target types.SammVersion) (*IDSet, bool) {
	switch target {
	case types.SammVersionV1:
		return s, true
	case types.SammVersionV2:
		s.Version = types.SammVersionV2
		s.SammProperty = NamespaceSammMetaModel + "property"
		s.SammOptional = NamespaceSammMetaModel + "optional"
		s.SelfNamespaces = v2Namespaces()
		s.Detector = types.NamespaceItem{Prefix: "samm:", URI: NamespaceSammMetaModel}
		s.resetIndices()
		return s, true
	default:
		return nil, false
	}
}

// NewIDSetForVersion is NewIDSet followed by SwitchToVersion.
func NewIDSetForVersion(version types.SammVersion) (*IDSet, bool) {
	return NewIDSet().SwitchToVersion(version)
}

func (s *IDSet) resetIndices() {
	s.urnToKind = nil
	s.kindToName = nil
	s.kindToURN = nil
	s.skipped = nil
	s.initialized = false
}

// Init indexes every addable element that declares a URN for this
// version. Elements without a self-description, or whose prefix is not in
// SelfNamespaces, are logged and skipped. Two elements claiming the same
// URN is a build error.
func (s *IDSet) Init(ctx context.Context) (*IDSet, error) {
	return s.index(ctx, addableElements)
}

func (s *IDSet) index(ctx context.Context, elements []elementSpec) (*IDSet, error) {
	assert.NotEmpty(ctx, s.Detector.Prefix, "detector prefix must be set")
	s.resetIndices()
	s.urnToKind = make(map[string]types.ElementKind, len(elements))
	s.kindToName = make(map[types.ElementKind]string, len(elements))
	s.kindToURN = make(map[types.ElementKind]string, len(elements))

	for _, el := range elements {
		if !el.availableIn(s.Version) {
			continue
		}
		short, ok := el.selfURN(s.Version)
		if !ok {
			s.skip(el.Kind, "no self-description")
			log.Debug().
				Str("kind", string(el.Kind)).
				Str("version", string(s.Version)).
				Msg("element without self-description skipped")
			continue
		}
		urn := s.SelfNamespaces.ExtendURI(short)
		if urn == short {
			s.skip(el.Kind, "prefix not in self namespaces: "+short)
			log.Warn().
				Str("kind", string(el.Kind)).
				Str("urn", short).
				Str("version", string(s.Version)).
				Msg("element prefix cannot be expanded, skipped")
			continue
		}
		if existing, dup := s.urnToKind[urn]; dup {
			s.resetIndices()
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("urn %s claimed by %s and %s", urn, existing, el.Kind))
		}
		s.urnToKind[urn] = el.Kind
		s.kindToName[el.Kind] = el.Name
		s.kindToURN[el.Kind] = urn
	}

	s.initialized = true
	log.Debug().
		Str("version", string(s.Version)).
		Int("elements", len(s.urnToKind)).
		Int("skipped", len(s.skipped)).
		Msg("samm id set initialized")
	return s, nil
}

func (s *IDSet) skip(kind types.ElementKind, reason string) {
	s.skipped = append(s.skipped, SkippedElement{Kind: kind, Reason: reason})
}

// Initialized reports whether Init completed since the last version switch.
func (s *IDSet) Initialized() bool {
	return s.initialized
}

// Skipped returns the elements Init could not index.
func (s *IDSet) Skipped() []SkippedElement {
	return append([]SkippedElement(nil), s.skipped...)
}

// TypeFromURN resolves a full URN, or a prefixed name using this
// version's prefixes, to its element kind. Full URNs are matched as given
// before any expansion, so a prefix such as "urn:" cannot shadow them.
func (s *IDSet) TypeFromURN(urn string) (types.ElementKind, bool) {
	if kind, ok := s.urnToKind[urn]; ok {
		return kind, true
	}
	kind, ok := s.urnToKind[s.SelfNamespaces.ExtendURI(urn)]
	return kind, ok
}

// NameFromKind returns the display name of kind in this version.
func (s *IDSet) NameFromKind(kind types.ElementKind) (string, bool) {
	name, ok := s.kindToName[kind]
	return name, ok
}

// URNForKind returns the expanded URN of kind in this version.
func (s *IDSet) URNForKind(kind types.ElementKind) (string, bool) {
	urn, ok := s.kindToURN[kind]
	return urn, ok
}

// withNamespaces returns a copy of s whose own namespaces also hold the
// items of extra, plus the items that were ignored because their prefix
// was already registered. s itself is not modified; the indices are
// shared since they are never written after Init.
func (s *IDSet) withNamespaces(extra *NamespaceMap) (*IDSet, []types.NamespaceItem) {
	next := *s
	next.SelfNamespaces = s.SelfNamespaces.Clone()
	var ignored []types.NamespaceItem
	for _, item := range extra.Items() {
		if !next.SelfNamespaces.AddOrIgnore(item.Prefix, item.URI) {
			ignored = append(ignored, item)
		}
	}
	return &next, ignored
}

// Kinds returns the indexed element kinds sorted by name.
func (s *IDSet) Kinds() []types.ElementKind {
	kinds := make([]types.ElementKind, 0, len(s.kindToURN))
	for kind := range s.kindToURN {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i] < kinds[j]
	})
	return kinds
}

// DataTypes returns the expanded datatype URIs valid in this version: the
// XSD list, rdf:langString and the version's curie type.
func (s *IDSet) DataTypes() []string {
	out := make([]string, 0, len(XSDDataTypes)+1)
	for _, short := range XSDDataTypes {
		out = append(out, s.SelfNamespaces.ExtendURI(short))
	}
	return append(out, s.CurieType())
}

// CurieType is the version's own curie datatype URI.
func (s *IDSet) CurieType() string {
	return s.SelfNamespaces.ExtendURI(s.Detector.Prefix + "curie")
}

// IsDataType reports whether uri (full or prefixed) is a valid datatype.
func (s *IDSet) IsDataType(uri string) bool {
	expanded := s.SelfNamespaces.ExtendURI(uri)
	for _, candidate := range s.DataTypes() {
		if candidate == expanded {
			return true
		}
	}
	return false
}
