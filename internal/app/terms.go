package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"samm-registry/internal/core"
	"samm-registry/internal/types"
)

// Expand turns prefixed names into full URNs using one version's own
// namespaces. Unknown prefixes pass through unmapped.
func (s Service) Expand(ctx context.Context, req ExpandRequest) (types.TermReport, error) {
	set, err := s.resolveSet(req.Version)
	if err != nil {
		return types.TermReport{}, err
	}
	if len(req.Terms) == 0 {
		return types.TermReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one term is required")
	}
	return mapTerms(set.Version, req.Terms, set.SelfNamespaces.ExtendURI), nil
}

// Compact shortens full URNs to prefixed names. Standard adds the cayley
// vocabularies after the version's own prefixes, so SAMM prefixes win
// any tie.
func (s Service) Compact(ctx context.Context, req CompactRequest) (types.TermReport, error) {
	set, err := s.resolveSet(req.Version)
	if err != nil {
		return types.TermReport{}, err
	}
	if len(req.URIs) == 0 {
		return types.TermReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one uri is required")
	}
	namespaces := set.SelfNamespaces.Clone()
	if req.Standard {
		namespaces.Merge(core.StandardNamespaces())
	}
	return mapTerms(set.Version, req.URIs, namespaces.PrefixURI), nil
}

func mapTerms(version types.SammVersion, inputs []string, fn func(string) string) types.TermReport {
	report := types.TermReport{Version: version}
	for _, input := range inputs {
		output := fn(input)
		report.Mappings = append(report.Mappings, types.TermMapping{
			Input:  input,
			Output: output,
			Mapped: output != input,
		})
	}
	return report
}
