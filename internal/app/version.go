package app

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"samm-registry/internal/core"
	"samm-registry/internal/types"
)

// resolveSet maps a user supplied version to its registered set. An empty
// value selects the most recently registered version.
func (s Service) resolveSet(value string) (*core.IDSet, error) {
	if value == "" {
		sets := s.Registry.Sets()
		if len(sets) == 0 {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("registry has no samm versions")
		}
		return sets[len(sets)-1], nil
	}
	version, ok := types.ParseSammVersion(value)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown samm version '%s'", value))
	}
	set, ok := s.Registry.ForVersion(version)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("samm version %s is not registered", version))
	}
	return set, nil
}
