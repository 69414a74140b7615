// Package sections reads "## NAME" delimited sections out of a project
// configuration document.
package sections

import (
	"regexp"
	"strings"
)

// MarkerPrefix starts every section marker line.
const MarkerPrefix = "## "

// nextMarker matches the start of any following section marker. Bodies run up
// to, but not including, the first line that begins with MarkerPrefix.
var nextMarker = regexp.MustCompile(`(?m)^## `)

// markerLine matches a complete marker line and captures the section name.
var markerLine = regexp.MustCompile(`(?m)^## (.*)$`)

type Section struct {
	Name string
	Body string // trimmed
	Line int    // 1-based line number of the marker
}

// Extract returns the trimmed body of the first section named name, or an
// empty string when config has no such section. The marker must be exactly
// "## <name>" on its own line and must be followed by a newline.
func Extract(config, name string) string {
	marker := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(MarkerPrefix+name) + `$\n`)

	loc := marker.FindStringIndex(config)
	if loc == nil {
		return ""
	}

	return strings.TrimSpace(body(config[loc[1]:]))
}

// body returns rest up to the next marker line.
func body(rest string) string {
	if next := nextMarker.FindStringIndex(rest); next != nil {
		return rest[:next[0]]
	}
	return rest
}

// Parse returns every section in config in document order. Duplicate names
// are kept so callers can report them; Lookup returns the first.
func Parse(config string) []Section {
	matches := markerLine.FindAllStringSubmatchIndex(config, -1)
	out := make([]Section, 0, len(matches))

	for _, m := range matches {
		// A marker on the final line with no trailing newline has no body and
		// is not extractable.
		if m[1] >= len(config) {
			continue
		}

		name := config[m[2]:m[3]]
		out = append(out, Section{
			Name: name,
			Body: strings.TrimSpace(body(config[m[1]+1:])),
			Line: strings.Count(config[:m[0]], "\n") + 1,
		})
	}

	return out
}

// Lookup returns the first section named name.
func Lookup(secs []Section, name string) (Section, bool) {
	for _, s := range secs {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Duplicates returns the names that appear more than once, in order of their
// second appearance.
func Duplicates(secs []Section) []string {
	seen := make(map[string]int, len(secs))
	var dups []string

	for _, s := range secs {
		seen[s.Name]++
		if seen[s.Name] == 2 {
			dups = append(dups, s.Name)
		}
	}

	return dups
}
