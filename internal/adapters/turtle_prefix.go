package adapters

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"samm-registry/internal/ports"
	"samm-registry/internal/types"
)

// Turtle "@prefix p: <uri> ." and SPARQL-style "PREFIX p: <uri>".
var (
	turtlePrefixPattern = regexp.MustCompile(`^@prefix\s+([A-Za-z][\w.-]*)?:\s*<([^>]*)>\s*\.`)
	sparqlPrefixPattern = regexp.MustCompile(`^(?i:prefix)\s+([A-Za-z][\w.-]*)?:\s*<([^>]*)>`)
)

// TurtlePrefixAdapter reads the namespace declarations of a Turtle file.
// Only the prefix directives are interpreted; triples are ignored.
type TurtlePrefixAdapter struct{}

func NewTurtlePrefixAdapter() TurtlePrefixAdapter {
	return TurtlePrefixAdapter{}
}

func (a TurtlePrefixAdapter) ReadNamespaces(path string) ([]types.NamespaceItem, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("turtle file not found: " + path).
			WithCause(err)
	}
	items, err := ParseTurtlePrefixes(string(content))
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("path", path).
		Int("prefixes", len(items)).
		Msg("turtle prefixes read")
	return items, nil
}

// ParseTurtlePrefixes returns the prefix declarations of content in
// declaration order. Several directives may share a line. Text inside
// long string literals ("""...""" or '''...''') is never read as a
// directive, even when it spans lines.
func ParseTurtlePrefixes(content string) ([]types.NamespaceItem, error) {
	var items []types.NamespaceItem
	open := ""
	for number, raw := range strings.Split(content, "\n") {
		if open != "" {
			open = scanLiterals(raw, open)
			continue
		}
		rest := strings.TrimSpace(raw)
		for rest != "" && isPrefixDirective(rest) {
			match := turtlePrefixPattern.FindStringSubmatch(rest)
			if match == nil {
				match = sparqlPrefixPattern.FindStringSubmatch(rest)
			}
			if match == nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid prefix declaration on line %d: %s", number+1, rest))
			}
			items = append(items, types.NamespaceItem{
				Prefix: match[1] + ":",
				URI:    match[2],
			})
			rest = strings.TrimSpace(rest[len(match[0]):])
		}
		open = scanLiterals(rest, "")
	}
	return items, nil
}

// scanLiterals walks one line of statement text and returns the long
// string delimiter still open at its end, or "" when none is. open is the
// delimiter carried over from the previous line.
func scanLiterals(line string, open string) string {
	for i := 0; i < len(line); {
		if open != "" {
			switch {
			case line[i] == '\\':
				i += 2
			case strings.HasPrefix(line[i:], open):
				i += len(open)
				open = ""
			default:
				i++
			}
			continue
		}
		switch c := line[i]; {
		case strings.HasPrefix(line[i:], `"""`), strings.HasPrefix(line[i:], "'''"):
			open = line[i : i+3]
			i += 3
		case c == '"' || c == '\'':
			i++
			for i < len(line) && line[i] != c {
				if line[i] == '\\' {
					i++
				}
				i++
			}
			i++
		case c == '<':
			end := strings.IndexByte(line[i:], '>')
			if end < 0 {
				return ""
			}
			i += end + 1
		case c == '#':
			return ""
		default:
			i++
		}
	}
	return open
}

func isPrefixDirective(line string) bool {
	if strings.HasPrefix(line, "@prefix") {
		return true
	}
	fields := strings.Fields(line)
	return len(fields) > 0 && strings.EqualFold(fields[0], "prefix")
}

var _ ports.NamespaceSourcePort = TurtlePrefixAdapter{}
