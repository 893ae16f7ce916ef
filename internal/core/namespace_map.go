package core

import (
	"sort"
	"strings"

	"github.com/cayleygraph/quad/voc"
	_ "github.com/cayleygraph/quad/voc/rdf"
	_ "github.com/cayleygraph/quad/voc/rdfs"
	_ "github.com/cayleygraph/quad/voc/schema"

	"samm-registry/internal/shared"
	"samm-registry/internal/types"
)

// NamespaceMap translates between "prefix:local" tokens and full URIs for
// one set of namespace prefixes. Prefixes are unique and the first
// registration wins. Iteration follows registration order.
//
// A NamespaceMap is not safe for concurrent mutation. Build it up front
// and share it read-only.
type NamespaceMap struct {
	items       []types.NamespaceItem
	prefixIndex map[string]int // prefix -> position in items
}

// NewNamespaceMap returns an empty map.
func NewNamespaceMap() *NamespaceMap {
	return &NamespaceMap{prefixIndex: map[string]int{}}
}

// NamespaceMapOf builds a map from items, ignoring entries AddOrIgnore
// would reject.
func NamespaceMapOf(items ...types.NamespaceItem) *NamespaceMap {
	m := NewNamespaceMap()
	for _, item := range items {
		m.AddOrIgnore(item.Prefix, item.URI)
	}
	return m
}

// AddOrIgnore registers prefix -> uri. It returns false and leaves the map
// untouched when either value is empty, when the trimmed prefix does not
// end with ':', or when the prefix is already registered.
func (m *NamespaceMap) AddOrIgnore(prefix string, uri string) bool {
	if prefix == "" || uri == "" {
		return false
	}
	trimmed := strings.TrimSpace(prefix)
	if !strings.HasSuffix(trimmed, ":") {
		return false
	}
	if m.prefixIndex == nil {
		m.prefixIndex = map[string]int{}
	}
	if _, exists := m.prefixIndex[trimmed]; exists {
		return false
	}
	m.prefixIndex[trimmed] = len(m.items)
	m.items = append(m.items, types.NamespaceItem{Prefix: trimmed, URI: uri})
	return true
}

// ContainsPrefix reports whether prefix (including its colon) is registered.
func (m *NamespaceMap) ContainsPrefix(prefix string) bool {
	if m == nil {
		return false
	}
	_, ok := m.prefixIndex[prefix]
	return ok
}

// GetFromPrefix returns the item registered for prefix.
func (m *NamespaceMap) GetFromPrefix(prefix string) (types.NamespaceItem, bool) {
	if m == nil {
		return types.NamespaceItem{}, false
	}
	idx, ok := m.prefixIndex[prefix]
	if !ok {
		return types.NamespaceItem{}, false
	}
	return m.items[idx], true
}

// ExtendURI expands "prefix:local" into "uri+local". Inputs without a colon
// or with an unregistered prefix are returned unchanged, so already
// qualified URIs pass through.
func (m *NamespaceMap) ExtendURI(input string) string {
	prefix, local, ok := shared.SplitCurie(input)
	if !ok {
		return input
	}
	item, found := m.GetFromPrefix(prefix)
	if !found {
		return input
	}
	return item.URI + local
}

// PrefixURI contracts a full URI into "prefix:local". When several
// registered URIs are prefixes of input the longest one wins; equal
// lengths go to the earlier registration. Unmatched input is returned
// unchanged.
func (m *NamespaceMap) PrefixURI(input string) string {
	item, ok := m.match(input)
	if !ok {
		return input
	}
	return item.Prefix + input[len(item.URI):]
}

func (m *NamespaceMap) match(input string) (types.NamespaceItem, bool) {
	if m == nil {
		return types.NamespaceItem{}, false
	}
	var best types.NamespaceItem
	found := false
	for _, item := range m.items {
		if !strings.HasPrefix(input, item.URI) {
			continue
		}
		if !found || len(item.URI) > len(best.URI) {
			best = item
			found = true
		}
	}
	return best, found
}

// Len returns the number of registered prefixes.
func (m *NamespaceMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.items)
}

// Items returns a copy of the registered items in registration order.
func (m *NamespaceMap) Items() []types.NamespaceItem {
	if m == nil {
		return nil
	}
	return append([]types.NamespaceItem(nil), m.items...)
}

// Clone returns an independent copy.
func (m *NamespaceMap) Clone() *NamespaceMap {
	return NamespaceMapOf(m.Items()...)
}

// Merge adds every item of other with AddOrIgnore semantics and returns
// how many were added.
func (m *NamespaceMap) Merge(other *NamespaceMap) int {
	added := 0
	for _, item := range other.Items() {
		if m.AddOrIgnore(item.Prefix, item.URI) {
			added++
		}
	}
	return added
}

// Vocabulary exports the map as a cayley namespace set so quad based
// tooling can shorten and expand IRIs with the same prefixes.
func (m *NamespaceMap) Vocabulary() *voc.Namespaces {
	ns := &voc.Namespaces{}
	for _, item := range m.Items() {
		ns.Register(voc.Namespace{Prefix: item.Prefix, Full: item.URI})
	}
	return ns
}

// NamespaceMapFromVocabulary imports cayley namespaces. The input order is
// not meaningful in cayley, so items are registered sorted by prefix.
func NamespaceMapFromVocabulary(list []voc.Namespace) *NamespaceMap {
	ordered := append([]voc.Namespace(nil), list...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Prefix < ordered[j].Prefix
	})
	m := NewNamespaceMap()
	for _, ns := range ordered {
		m.AddOrIgnore(ns.Prefix, ns.Full)
	}
	return m
}

// StandardNamespaces returns the vocabularies cayley registers
// globally (rdf, rdfs, schema.org and whatever else the binary links in).
func StandardNamespaces() *NamespaceMap {
	return NamespaceMapFromVocabulary(voc.List())
}
