package app

import (
	"fmt"
	"io"

	"samm-registry/internal/types"
)

// detectionHints explains non-exact detections so users know the file
// was interpreted with an older registered dialect.
func detectionHints(report types.DetectionReport) []string {
	if report.Exact {
		return nil
	}
	return []string{fmt.Sprintf(
		"hint: %s declares meta model %s; interpreted as %s (%s)",
		report.Path, report.DocumentVersion, report.Version, report.Detector.URI,
	)}
}

// emitHints writes hint messages to w.
func emitHints(w io.Writer, hints []string) {
	for _, h := range hints {
		fmt.Fprintln(w, h)
	}
}
