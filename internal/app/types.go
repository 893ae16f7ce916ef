package app

type DetectRequest struct {
	Path string
}

type ExpandRequest struct {
	Version string
	Terms   []string
}

type CompactRequest struct {
	Version string
	URIs    []string
	// Standard also consults the vocabularies registered with cayley.
	Standard bool
}

type LookupRequest struct {
	Term string
}

type ElementsRequest struct {
	// Version limits the listing; empty lists every registered version.
	Version string
}

type NamespacesRequest struct {
	Version string
}
