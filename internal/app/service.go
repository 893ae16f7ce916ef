package app

import (
	"context"

	"samm-registry/internal/adapters"
	"samm-registry/internal/core"
	"samm-registry/internal/ports"
)

type Service struct {
	Source     ports.NamespaceSourcePort
	Vocabulary ports.VocabularyPort
	Reports    ports.ReportWriterPort
	Registry   *core.Registry
}

// NewService wires the file adapters to a freshly built default registry.
func NewService(ctx context.Context) (Service, error) {
	registry, err := core.NewDefaultRegistry(ctx)
	if err != nil {
		return Service{}, err
	}
	return Service{
		Source:     adapters.NewTurtlePrefixAdapter(),
		Vocabulary: adapters.NewVocabularyFileAdapter(),
		Reports:    adapters.NewReportWriterAdapter(),
		Registry:   registry,
	}, nil
}
