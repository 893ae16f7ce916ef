package app

import (
	"io"

	"samm-registry/internal/types"
)

// WriteReport renders any report type through the configured writer.
func (s Service) WriteReport(w io.Writer, format types.ReportFormat, report any) error {
	return s.Reports.Write(w, format, report)
}
