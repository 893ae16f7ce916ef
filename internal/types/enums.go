package types

import "strings"

// SammVersion identifies one epoch of the SAMM meta model. Each epoch has
// its own prefix and URN conventions.
type SammVersion string

const (
	SammVersionV1 SammVersion = "v1"
	SammVersionV2 SammVersion = "v2"
)

// SupportedSammVersions lists the versions in registration order.
var SupportedSammVersions = []SammVersion{SammVersionV1, SammVersionV2}

// ParseSammVersion accepts the short names used on the command line and
// in vocabulary files.
func ParseSammVersion(value string) (SammVersion, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "v1", "1", "bamm", "samm1":
		return SammVersionV1, true
	case "v2", "2", "samm", "samm2":
		return SammVersionV2, true
	default:
		return "", false
	}
}

func (v SammVersion) String() string {
	return string(v)
}

// ElementFamily groups elements by the namespace that declares them.
type ElementFamily string

const (
	ElementFamilyNone           ElementFamily = ""
	ElementFamilyMetaModel      ElementFamily = "meta-model"
	ElementFamilyCharacteristic ElementFamily = "characteristic"
)

type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatYAML ReportFormat = "yaml"
	ReportFormatJSON ReportFormat = "json"
)
