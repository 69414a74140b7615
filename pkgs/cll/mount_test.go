package cll

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrefixed(t *testing.T) {
	got := prefixed("CLAUDEMD_", []string{"CONFIG_FILE", "OUTPUT_FILE"})
	want := []string{"CLAUDEMD_CONFIG_FILE", "CLAUDEMD_OUTPUT_FILE"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("prefixed() mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvWithFallback(t *testing.T) {
	env := EnvWithFallback("CLAUDEMD_")

	tests := []struct {
		name     string
		prefixed string
		bare     string
		want     string
	}{
		{name: "prefixed wins", prefixed: "/a.md", bare: "/b.md", want: "/a.md"},
		{name: "bare fallback", prefixed: "", bare: "/b.md", want: "/b.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prefixed != "" {
				t.Setenv("CLAUDEMD_TEMPLATE_FILE", tt.prefixed)
			}
			t.Setenv("TEMPLATE_FILE", tt.bare)

			chain := env("TEMPLATE_FILE")
			got, ok := chain.Lookup()
			if !ok {
				t.Fatal("Lookup() ok = false, want true")
			}
			if got != tt.want {
				t.Errorf("Lookup() = %v, want %v", got, tt.want)
			}
		})
	}
}
