package types

// ElementKind names one addable SAMM model element.
type ElementKind string

const (
	ElementKindNamedElement                ElementKind = "NamedElement"
	ElementKindAspect                      ElementKind = "Aspect"
	ElementKindProperty                    ElementKind = "Property"
	ElementKindCharacteristic              ElementKind = "Characteristic"
	ElementKindTrait                       ElementKind = "Trait"
	ElementKindConstraint                  ElementKind = "Constraint"
	ElementKindEntity                      ElementKind = "Entity"
	ElementKindAbstractEntity              ElementKind = "AbstractEntity"
	ElementKindUnit                        ElementKind = "Unit"
	ElementKindOperation                   ElementKind = "Operation"
	ElementKindEvent                       ElementKind = "Event"
	ElementKindEnumeration                 ElementKind = "Enumeration"
	ElementKindState                       ElementKind = "State"
	ElementKindMeasurement                 ElementKind = "Measurement"
	ElementKindQuantifiable                ElementKind = "Quantifiable"
	ElementKindDuration                    ElementKind = "Duration"
	ElementKindCollection                  ElementKind = "Collection"
	ElementKindList                        ElementKind = "List"
	ElementKindSet                         ElementKind = "Set"
	ElementKindSortedSet                   ElementKind = "SortedSet"
	ElementKindTimeSeries                  ElementKind = "TimeSeries"
	ElementKindCode                        ElementKind = "Code"
	ElementKindEither                      ElementKind = "Either"
	ElementKindStructuredValue             ElementKind = "StructuredValue"
	ElementKindSingleEntity                ElementKind = "SingleEntity"
	ElementKindLanguageConstraint          ElementKind = "LanguageConstraint"
	ElementKindLocaleConstraint            ElementKind = "LocaleConstraint"
	ElementKindRangeConstraint             ElementKind = "RangeConstraint"
	ElementKindEncodingConstraint          ElementKind = "EncodingConstraint"
	ElementKindLengthConstraint            ElementKind = "LengthConstraint"
	ElementKindRegularExpressionConstraint ElementKind = "RegularExpressionConstraint"
	ElementKindFixedPointConstraint        ElementKind = "FixedPointConstraint"
)

func (k ElementKind) String() string {
	return string(k)
}

// NamespaceItem binds a prefix (always ending in ':') to its namespace URI.
type NamespaceItem struct {
	Prefix string `yaml:"prefix" json:"prefix"`
	URI    string `yaml:"uri" json:"uri"`
}
