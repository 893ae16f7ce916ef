package ports

import (
	"io"

	"samm-registry/internal/types"
)

type ReportWriterPort interface {
	Write(w io.Writer, format types.ReportFormat, report any) error
}
