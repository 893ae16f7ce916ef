package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"samm-registry/internal/types"
)

// Registry holds one initialized IDSet per SAMM version and answers
// lookups across all of them in registration order. Reads may run
// concurrently with each other, with AddSet and with MergeNamespaces.
// Registered sets are never mutated; MergeNamespaces swaps in a copy.
type Registry struct {
	mu   sync.RWMutex
	sets []*IDSet
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewDefaultRegistry builds and initializes every supported version.
func NewDefaultRegistry(ctx context.Context) (*Registry, error) {
	registry := NewRegistry()
	for _, version := range types.SupportedSammVersions {
		set, ok := NewIDSetForVersion(version)
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("unsupported samm version: " + string(version))
		}
		if _, err := set.Init(ctx); err != nil {
			return nil, err
		}
		if err := registry.AddSet(set); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// AddSet appends an initialized set. A version may be registered once.
func (r *Registry) AddSet(set *IDSet) error {
	if set == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("id set is nil")
	}
	if !set.Initialized() {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("id set %s is not initialized", set.Version))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.sets {
		if existing.Version == set.Version {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("id set %s already registered", set.Version))
		}
	}
	r.sets = append(r.sets, set)
	log.Debug().
		Str("version", string(set.Version)).
		Int("sets", len(r.sets)).
		Msg("id set registered")
	return nil
}

// MergeNamespaces adds the items of extra to the own namespaces of the
// set registered for version. Prefixes the set already knows are left
// untouched and returned as ignored. The updated set replaces the old one
// atomically, so readers holding the previous set keep a consistent view.
func (r *Registry) MergeNamespaces(version types.SammVersion, extra *NamespaceMap) (int, []types.NamespaceItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, set := range r.sets {
		if set.Version != version {
			continue
		}
		next, ignored := set.withNamespaces(extra)
		r.sets[i] = next
		added := next.SelfNamespaces.Len() - set.SelfNamespaces.Len()
		log.Debug().
			Str("version", string(version)).
			Int("added", added).
			Int("ignored", len(ignored)).
			Msg("id set namespaces merged")
		return added, ignored, nil
	}
	return 0, nil, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("samm version %s is not registered", version))
}

// Sets returns the registered sets in registration order.
func (r *Registry) Sets() []*IDSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*IDSet(nil), r.sets...)
}

// ForVersion returns the set registered for version.
func (r *Registry) ForVersion(version types.SammVersion) (*IDSet, bool) {
	for _, set := range r.Sets() {
		if set.Version == version {
			return set, true
		}
	}
	return nil, false
}

// AnyTypeFromURN returns the first set, in registration order, that
// resolves urn, together with the element kind.
func (r *Registry) AnyTypeFromURN(urn string) (*IDSet, types.ElementKind, bool) {
	for _, set := range r.Sets() {
		if kind, ok := set.TypeFromURN(urn); ok {
			return set, kind, true
		}
	}
	return nil, "", false
}

// AnyNameFromKind returns the display name of kind from the first set
// that knows it.
func (r *Registry) AnyNameFromKind(kind types.ElementKind) (string, bool) {
	for _, set := range r.Sets() {
		if name, ok := set.NameFromKind(kind); ok {
			return name, true
		}
	}
	return "", false
}

// DetectVersion finds the first set whose detector prefix is declared in
// external and in the set's own namespaces with the same URI.
func (r *Registry) DetectVersion(external *NamespaceMap) (*IDSet, bool) {
	if external == nil {
		return nil, false
	}
	for _, set := range r.Sets() {
		prefix := set.Detector.Prefix
		theirs, ok := external.GetFromPrefix(prefix)
		if !ok {
			continue
		}
		ours, ok := set.SelfNamespaces.GetFromPrefix(prefix)
		if !ok {
			continue
		}
		if theirs.URI == ours.URI {
			return set, true
		}
	}
	return nil, false
}

// DetectCompatible is DetectVersion with a fallback for documents that
// declare a newer minor or patch release of a registered meta model, for
// example samm 2.1.0 when only 2.0.0 is registered. The fallback matches
// on the declared meta-model URN regardless of the prefix it is bound to.
func (r *Registry) DetectCompatible(external *NamespaceMap) (Compatibility, bool) {
	if set, ok := r.DetectVersion(external); ok {
		own, _ := ParseMetaModelURN(set.Detector.URI)
		return Compatibility{Set: set, Exact: true, DocumentVersion: own.Version}, true
	}
	sets := r.Sets()
	for _, item := range external.Items() {
		doc, ok := ParseMetaModelURN(item.URI)
		if !ok || doc.Element != string(types.ElementFamilyMetaModel) {
			continue
		}
		if set, found := compatibleSet(doc, sets); found {
			log.Debug().
				Str("document_version", doc.Version).
				Str("version", string(set.Version)).
				Msg("meta model version matched by compatibility")
			return Compatibility{Set: set, DocumentVersion: doc.Version}, true
		}
	}
	return Compatibility{}, false
}
