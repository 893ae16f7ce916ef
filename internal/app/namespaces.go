package app

import (
	"context"

	"samm-registry/internal/types"
)

// Namespaces lists the prefixes a version declares for itself.
func (s Service) Namespaces(ctx context.Context, req NamespacesRequest) (types.NamespaceReport, error) {
	set, err := s.resolveSet(req.Version)
	if err != nil {
		return types.NamespaceReport{}, err
	}
	return types.NamespaceReport{
		Version:    set.Version,
		Detector:   set.Detector,
		Namespaces: set.SelfNamespaces.Items(),
	}, nil
}
