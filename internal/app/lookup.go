package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"samm-registry/internal/types"
)

// Lookup resolves a prefixed name or full URN to its element kind,
// trying every registered version in order.
func (s Service) Lookup(ctx context.Context, req LookupRequest) (types.ElementEntry, error) {
	term := strings.TrimSpace(req.Term)
	if term == "" {
		return types.ElementEntry{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("term is required")
	}
	set, kind, ok := s.Registry.AnyTypeFromURN(term)
	if !ok {
		return types.ElementEntry{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no samm element for " + term)
	}
	name, _ := set.NameFromKind(kind)
	urn, _ := set.URNForKind(kind)
	return types.ElementEntry{Kind: kind, Name: name, URN: urn, Version: set.Version}, nil
}
