// Package scaffold builds a starter project configuration document.
package scaffold

import (
	"strings"

	"github.com/hay-kot/claudemd/internal/renderer"
	"github.com/hay-kot/claudemd/internal/sections"
)

// Answers are the values collected for a new configuration document.
type Answers struct {
	ProjectDescription string
	DomainSpecifics    string
	DatabaseSchemaRef  string
}

const header = "# Project Configuration\n\n" +
	"Sections below are merged into CLAUDE.md by claudemd. Each section runs\n" +
	"from its \"## NAME\" line to the next one.\n"

// Build renders answers as a configuration document. Every section is
// written, empty ones included, so the file documents what can be set.
func Build(a Answers) string {
	var sb strings.Builder
	sb.WriteString(header)

	for _, s := range []struct {
		name  string
		value string
	}{
		{renderer.SectionProjectDescription, a.ProjectDescription},
		{renderer.SectionDomainSpecifics, a.DomainSpecifics},
		{renderer.SectionDatabaseSchemaRef, a.DatabaseSchemaRef},
	} {
		sb.WriteString("\n")
		sb.WriteString(sections.MarkerPrefix + s.name + "\n")
		if v := sanitize(s.value); v != "" {
			sb.WriteString(v + "\n")
		}
	}

	return sb.String()
}

// sanitize trims value and indents lines that would otherwise be read as a
// section marker.
func sanitize(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	lines := strings.Split(value, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, sections.MarkerPrefix) {
			lines[i] = " " + line
		}
	}

	return strings.Join(lines, "\n")
}
