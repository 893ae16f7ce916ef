package core

import (
	"samm-registry/internal/types"
)

// elementSpec describes how a model element declares itself. The URN of
// an element under a version is the family prefix of that version
// followed by Name.
type elementSpec struct {
	Kind   types.ElementKind
	Name   string
	Family types.ElementFamily
	// Versions limits availability; nil means every version.
	Versions []types.SammVersion
}

func (e elementSpec) availableIn(version types.SammVersion) bool {
	if len(e.Versions) == 0 {
		return true
	}
	for _, v := range e.Versions {
		if v == version {
			return true
		}
	}
	return false
}

// addableElements is the fixed list of element kinds the registry indexes.
// NamedElement is an abstract marker without a URN and is skipped.
var addableElements = []elementSpec{
	{Kind: types.ElementKindNamedElement, Name: "NamedElement", Family: types.ElementFamilyNone},
	{Kind: types.ElementKindAspect, Name: "Aspect", Family: types.ElementFamilyMetaModel},
	{Kind: types.ElementKindProperty, Name: "Property", Family: types.ElementFamilyMetaModel},
	{Kind: types.ElementKindCharacteristic, Name: "Characteristic", Family: types.ElementFamilyMetaModel},
	{Kind: types.ElementKindTrait, Name: "Trait", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindConstraint, Name: "Constraint", Family: types.ElementFamilyMetaModel},
	{Kind: types.ElementKindEntity, Name: "Entity", Family: types.ElementFamilyMetaModel},
	{Kind: types.ElementKindAbstractEntity, Name: "AbstractEntity", Family: types.ElementFamilyMetaModel, Versions: []types.SammVersion{types.SammVersionV2}},
	{Kind: types.ElementKindUnit, Name: "Unit", Family: types.ElementFamilyMetaModel},
	{Kind: types.ElementKindOperation, Name: "Operation", Family: types.ElementFamilyMetaModel},
	{Kind: types.ElementKindEvent, Name: "Event", Family: types.ElementFamilyMetaModel},
	{Kind: types.ElementKindEnumeration, Name: "Enumeration", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindState, Name: "State", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindMeasurement, Name: "Measurement", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindQuantifiable, Name: "Quantifiable", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindDuration, Name: "Duration", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindCollection, Name: "Collection", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindList, Name: "List", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindSet, Name: "Set", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindSortedSet, Name: "SortedSet", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindTimeSeries, Name: "TimeSeries", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindCode, Name: "Code", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindEither, Name: "Either", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindStructuredValue, Name: "StructuredValue", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindSingleEntity, Name: "SingleEntity", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindLanguageConstraint, Name: "LanguageConstraint", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindLocaleConstraint, Name: "LocaleConstraint", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindRangeConstraint, Name: "RangeConstraint", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindEncodingConstraint, Name: "EncodingConstraint", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindLengthConstraint, Name: "LengthConstraint", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindRegularExpressionConstraint, Name: "RegularExpressionConstraint", Family: types.ElementFamilyCharacteristic},
	{Kind: types.ElementKindFixedPointConstraint, Name: "FixedPointConstraint", Family: types.ElementFamilyCharacteristic},
}

// familyPrefixes holds the short prefix each version uses per family.
var familyPrefixes = map[types.SammVersion]map[types.ElementFamily]string{
	types.SammVersionV1: {
		types.ElementFamilyMetaModel:      "bamm:",
		types.ElementFamilyCharacteristic: "bamm-c:",
	},
	types.SammVersionV2: {
		types.ElementFamilyMetaModel:      "samm:",
		types.ElementFamilyCharacteristic: "samm-c:",
	},
}

// selfURN returns the prefixed self-description of e under version, or
// false when the element has none.
func (e elementSpec) selfURN(version types.SammVersion) (string, bool) {
	if e.Family == types.ElementFamilyNone || e.Name == "" {
		return "", false
	}
	prefix, ok := familyPrefixes[version][e.Family]
	if !ok {
		return "", false
	}
	return prefix + e.Name, true
}

// AddableElementKinds lists the element kinds in table order.
func AddableElementKinds() []types.ElementKind {
	kinds := make([]types.ElementKind, 0, len(addableElements))
	for _, el := range addableElements {
		kinds = append(kinds, el.Kind)
	}
	return kinds
}

// XSDDataTypes is the closed list of XSD datatypes SAMM models may use.
var XSDDataTypes = []string{
	"xsd:string",
	"xsd:boolean",
	"xsd:decimal",
	"xsd:integer",
	"xsd:double",
	"xsd:float",
	"xsd:date",
	"xsd:time",
	"xsd:dateTime",
	"xsd:dateTimeStamp",
	"xsd:gYear",
	"xsd:gMonth",
	"xsd:gDay",
	"xsd:gYearMonth",
	"xsd:gMonthDay",
	"xsd:duration",
	"xsd:yearMonthDuration",
	"xsd:dayTimeDuration",
	"xsd:byte",
	"xsd:short",
	"xsd:int",
	"xsd:long",
	"xsd:unsignedByte",
	"xsd:unsignedShort",
	"xsd:unsignedInt",
	"xsd:unsignedLong",
	"xsd:positiveInteger",
	"xsd:nonNegativeInteger",
	"xsd:negativeInteger",
	"xsd:nonPositiveInteger",
	"xsd:hexBinary",
	"xsd:base64Binary",
	"xsd:anyURI",
	"rdf:langString",
}
