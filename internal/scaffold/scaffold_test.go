package scaffold

import (
	"strings"
	"testing"

	"github.com/hay-kot/claudemd/internal/renderer"
	"github.com/hay-kot/claudemd/internal/sections"
)

func TestBuild_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		want    Answers
	}{
		{
			name: "all answered",
			answers: Answers{
				ProjectDescription: "  A sample tool\n\nwith two paragraphs  ",
				DomainSpecifics:    "- payments\n## not a section\n- ledgers",
				DatabaseSchemaRef:  "docs/schema.md",
			},
			want: Answers{
				ProjectDescription: "A sample tool\n\nwith two paragraphs",
				DomainSpecifics:    "- payments\n ## not a section\n- ledgers",
				DatabaseSchemaRef:  "docs/schema.md",
			},
		},
		{
			name:    "nothing answered",
			answers: Answers{},
			want:    Answers{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Build(tt.answers)

			got := Answers{
				ProjectDescription: sections.Extract(doc, renderer.SectionProjectDescription),
				DomainSpecifics:    sections.Extract(doc, renderer.SectionDomainSpecifics),
				DatabaseSchemaRef:  sections.Extract(doc, renderer.SectionDatabaseSchemaRef),
			}

			if got != tt.want {
				t.Errorf("Build() round trip = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuild_AllSectionsPresent(t *testing.T) {
	doc := Build(Answers{})

	secs := sections.Parse(doc)
	if len(secs) != 3 {
		t.Fatalf("Build() produced %d sections, want 3:\n%s", len(secs), doc)
	}

	if !strings.HasPrefix(doc, "# Project Configuration\n") {
		t.Errorf("Build() missing header:\n%s", doc)
	}
}
