package adapters

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"samm-registry/internal/ports"
	"samm-registry/internal/types"
)

type ReportWriterAdapter struct{}

func NewReportWriterAdapter() ReportWriterAdapter {
	return ReportWriterAdapter{}
}

func (a ReportWriterAdapter) Write(w io.Writer, format types.ReportFormat, report any) error {
	switch format {
	case types.ReportFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return writeError(err)
		}
		return encoder.Close()
	case types.ReportFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return writeError(err)
		}
		return nil
	case types.ReportFormatText, "":
		_, err := io.WriteString(w, renderText(report))
		if err != nil {
			return writeError(err)
		}
		return nil
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown report format: %s", format))
	}
}

func writeError(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to write report").
		WithCause(err)
}

func renderText(report any) string {
	var lines []string
	switch r := report.(type) {
	case types.DetectionReport:
		match := "exact"
		if !r.Exact {
			match = "compatible"
		}
		lines = append(lines,
			fmt.Sprintf("version: %s (%s)", r.Version, match),
			fmt.Sprintf("detector: %s <%s>", r.Detector.Prefix, r.Detector.URI),
		)
		if r.DocumentVersion != "" {
			lines = append(lines, fmt.Sprintf("document meta model: %s", r.DocumentVersion))
		}
		lines = append(lines, fmt.Sprintf("prefixes: %d", len(r.Prefixes)))
	case types.TermReport:
		for _, mapping := range r.Mappings {
			lines = append(lines, fmt.Sprintf("%s -> %s", mapping.Input, mapping.Output))
		}
	case types.ElementReport:
		for _, entry := range r.Elements {
			lines = append(lines, fmt.Sprintf("%s %s %s", entry.Version, entry.Name, entry.URN))
		}
	case types.ElementEntry:
		lines = append(lines, fmt.Sprintf("%s %s %s", r.Version, r.Name, r.URN))
	case types.NamespaceReport:
		lines = append(lines, fmt.Sprintf("version: %s", r.Version))
		for _, item := range r.Namespaces {
			lines = append(lines, fmt.Sprintf("@prefix %s <%s> .", item.Prefix, item.URI))
		}
	default:
		lines = append(lines, fmt.Sprint(report))
	}
	return strings.Join(lines, "\n") + "\n"
}

var _ ports.ReportWriterPort = ReportWriterAdapter{}
