package ports

import "samm-registry/internal/types"

// NamespaceSourcePort extracts the namespace declarations of a model file
// in declaration order.
type NamespaceSourcePort interface {
	ReadNamespaces(path string) ([]types.NamespaceItem, error)
}
