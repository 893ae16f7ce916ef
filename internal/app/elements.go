package app

import (
	"context"

	"samm-registry/internal/core"
	"samm-registry/internal/types"
)

// Elements lists the indexed meta-model elements of one version, or of
// every registered version when none is requested.
func (s Service) Elements(ctx context.Context, req ElementsRequest) (types.ElementReport, error) {
	sets := s.Registry.Sets()
	if req.Version != "" {
		set, err := s.resolveSet(req.Version)
		if err != nil {
			return types.ElementReport{}, err
		}
		sets = []*core.IDSet{set}
	}
	report := types.ElementReport{}
	for _, set := range sets {
		for _, kind := range set.Kinds() {
			name, _ := set.NameFromKind(kind)
			urn, _ := set.URNForKind(kind)
			report.Elements = append(report.Elements, types.ElementEntry{
				Kind:    kind,
				Name:    name,
				URN:     urn,
				Version: set.Version,
			})
		}
	}
	return report, nil
}
