package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathResolver_Resolve(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("failed to get home directory: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	tests := []struct {
		name      string
		configDir string
		input     string
		want      string
	}{
		{
			name:      "absolute path",
			configDir: "/project/.claude",
			input:     "/templates/CLAUDE.md",
			want:      "/templates/CLAUDE.md",
		},
		{
			name:      "home directory expansion",
			configDir: "/project/.claude",
			input:     "~/Code/project-template/CLAUDE.md",
			want:      filepath.Join(homeDir, "Code/project-template/CLAUDE.md"),
		},
		{
			name:      "home directory only",
			configDir: "",
			input:     "~",
			want:      homeDir,
		},
		{
			name:      "relative to settings directory",
			configDir: "/project/.claude",
			input:     "PROJECT_CONFIG.md",
			want:      "/project/.claude/PROJECT_CONFIG.md",
		},
		{
			name:      "parent of settings directory",
			configDir: "/project/.claude",
			input:     "../CLAUDE.md",
			want:      "/project/CLAUDE.md",
		},
		{
			name:      "relative to working directory",
			configDir: "",
			input:     ".claude/PROJECT_CONFIG.md",
			want:      filepath.Join(cwd, ".claude/PROJECT_CONFIG.md"),
		},
		{
			name:      "absolute path is cleaned",
			configDir: "/project/.claude",
			input:     "/templates//CLAUDE.md/",
			want:      "/templates/CLAUDE.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPathResolver(tt.configDir).Resolve(tt.input)
			if err != nil {
				t.Fatalf("PathResolver.Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PathResolver.Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}
