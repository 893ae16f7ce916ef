package core

import (
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
)

// MetaModelURN is a parsed namespace URN of the form
// urn:<family>:<namespace>:<element>:<version>#.
type MetaModelURN struct {
	Family    string
	Namespace string
	Element   string
	Version   string
}

// ParseMetaModelURN splits a SAMM/BAMM namespace URN. The trailing '#' is
// optional.
func ParseMetaModelURN(uri string) (MetaModelURN, bool) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(uri), "#")
	parts := strings.Split(trimmed, ":")
	if len(parts) != 5 || parts[0] != "urn" {
		return MetaModelURN{}, false
	}
	for _, part := range parts[1:] {
		if part == "" {
			return MetaModelURN{}, false
		}
	}
	return MetaModelURN{
		Family:    parts[1],
		Namespace: parts[2],
		Element:   parts[3],
		Version:   parts[4],
	}, true
}

// major returns the leading numeric segment of a dotted version.
func (u MetaModelURN) major() string {
	head, _, _ := strings.Cut(u.Version, ".")
	return head
}

func (u MetaModelURN) sameLine(other MetaModelURN) bool {
	return u.Family == other.Family &&
		u.Namespace == other.Namespace &&
		u.Element == other.Element &&
		u.major() == other.major()
}

// Compatibility is the result of loose version detection.
type Compatibility struct {
	Set             *IDSet
	Exact           bool
	DocumentVersion string
}

// compatibleSet picks, among sets, the one on the same meta-model line as
// doc whose version is the highest not above doc's version.
func compatibleSet(doc MetaModelURN, sets []*IDSet) (*IDSet, bool) {
	docVersion, err := pep440.Parse(doc.Version)
	if err != nil {
		return nil, false
	}
	var best *IDSet
	var bestVersion pep440.Version
	for _, set := range sets {
		own, ok := ParseMetaModelURN(set.Detector.URI)
		if !ok || !own.sameLine(doc) {
			continue
		}
		ownVersion, err := pep440.Parse(own.Version)
		if err != nil {
			continue
		}
		if ownVersion.Compare(docVersion) > 0 {
			continue
		}
		if best == nil || ownVersion.Compare(bestVersion) > 0 {
			best = set
			bestVersion = ownVersion
		}
	}
	return best, best != nil
}
