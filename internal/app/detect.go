package app

import (
	"context"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"samm-registry/internal/core"
	"samm-registry/internal/types"
)

// Detect reads the prefix declarations of a Turtle document and reports
// which registered SAMM version it is written against.
func (s Service) Detect(ctx context.Context, req DetectRequest) (types.DetectionReport, error) {
	if req.Path == "" {
		return types.DetectionReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("path is required")
	}
	items, err := s.Source.ReadNamespaces(req.Path)
	if err != nil {
		return types.DetectionReport{}, err
	}
	external := core.NewNamespaceMap()
	for _, item := range items {
		if !external.AddOrIgnore(item.Prefix, item.URI) {
			log.Debug().
				Str("path", req.Path).
				Str("prefix", item.Prefix).
				Msg("ignoring repeated prefix declaration")
		}
	}

	match, ok := s.Registry.DetectCompatible(external)
	if !ok {
		return types.DetectionReport{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no registered samm version matches " + req.Path)
	}
	report := types.DetectionReport{
		Path:            req.Path,
		Version:         match.Set.Version,
		Detector:        match.Set.Detector,
		Exact:           match.Exact,
		DocumentVersion: match.DocumentVersion,
		Prefixes:        external.Items(),
	}
	emitHints(os.Stderr, detectionHints(report))
	return report, nil
}
