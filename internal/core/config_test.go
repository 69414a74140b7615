package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filippo.io/age"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestMain(m *testing.M) {
	log.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestSetupEnv_Precedence(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, ".claude", "claudemd.yml")

	writeFile(t, settingsPath, `template: ../templates/CLAUDE.md
config: PROJECT_CONFIG.md
bindings:
  - section: TEAM
    target: "{{TEAM}}"
  - section: ONCALL
    target: "Oncall: none"
    format: "Oncall: {value}"
    when: value != ""
age:
  identity_file: key.txt
`)

	tests := []struct {
		name  string
		flags Flags
		want  Env
	}{
		{
			name:  "settings file",
			flags: Flags{SettingsPath: settingsPath},
			want: Env{
				TemplatePath: filepath.Join(dir, "templates", "CLAUDE.md"),
				ConfigPath:   filepath.Join(dir, ".claude", "PROJECT_CONFIG.md"),
				OutputPath:   mustAbs(t, DefaultOutputPath),
			},
		},
		{
			name: "flags override settings",
			flags: Flags{
				SettingsPath: settingsPath,
				TemplatePath: "/abs/template.md",
				OutputPath:   "/abs/out.md",
			},
			want: Env{
				TemplatePath: "/abs/template.md",
				ConfigPath:   filepath.Join(dir, ".claude", "PROJECT_CONFIG.md"),
				OutputPath:   "/abs/out.md",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SetupEnv(&tt.flags)
			if err != nil {
				t.Fatalf("SetupEnv() error = %v", err)
			}

			if got.TemplatePath != tt.want.TemplatePath {
				t.Errorf("TemplatePath = %v, want %v", got.TemplatePath, tt.want.TemplatePath)
			}
			if got.ConfigPath != tt.want.ConfigPath {
				t.Errorf("ConfigPath = %v, want %v", got.ConfigPath, tt.want.ConfigPath)
			}
			if got.OutputPath != tt.want.OutputPath {
				t.Errorf("OutputPath = %v, want %v", got.OutputPath, tt.want.OutputPath)
			}
			if len(got.Settings.Bindings) != 2 {
				t.Fatalf("Bindings = %d, want 2", len(got.Settings.Bindings))
			}
			if got.Settings.Bindings[1].When != `value != ""` {
				t.Errorf("Bindings[1].When = %q", got.Settings.Bindings[1].When)
			}
			if want := filepath.Join(dir, ".claude", "key.txt"); got.Settings.Age.IdentityFile != want {
				t.Errorf("IdentityFile = %v, want %v", got.Settings.Age.IdentityFile, want)
			}
		})
	}
}

func TestSetupEnv_Defaults(t *testing.T) {
	// The default settings file is optional.
	t.Chdir(t.TempDir())

	got, err := SetupEnv(&Flags{})
	if err != nil {
		t.Fatalf("SetupEnv() error = %v", err)
	}

	if got.SettingsPath != "" {
		t.Errorf("SettingsPath = %q, want empty", got.SettingsPath)
	}
	if want := mustAbs(t, DefaultConfigPath); got.ConfigPath != want {
		t.Errorf("ConfigPath = %v, want %v", got.ConfigPath, want)
	}
	if !strings.HasSuffix(got.TemplatePath, "Code/project-template/CLAUDE.md") || !filepath.IsAbs(got.TemplatePath) {
		t.Errorf("TemplatePath = %v, want expanded default", got.TemplatePath)
	}
}

func TestSetupEnv_ExplicitSettingsMissing(t *testing.T) {
	_, err := SetupEnv(&Flags{SettingsPath: filepath.Join(t.TempDir(), "nope.yml")})
	if err == nil {
		t.Fatal("SetupEnv() error = nil, want error for missing explicit settings file")
	}
}

func TestSetupEnv_InvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claudemd.yml")
	writeFile(t, path, "bindings: [unterminated\n")

	if _, err := SetupEnv(&Flags{SettingsPath: path}); err == nil {
		t.Fatal("SetupEnv() error = nil, want decode error")
	}
}

func TestAge_ReadIdentity(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("failed to generate identity: %v", err)
	}

	path := filepath.Join(t.TempDir(), "key.txt")
	writeFile(t, path, "# created: today\n# public key: "+identity.Recipient().String()+"\n"+identity.String()+"\n")

	got, err := Age{IdentityFile: path}.ReadIdentity()
	if err != nil {
		t.Fatalf("ReadIdentity() error = %v", err)
	}

	x, ok := got.(*age.X25519Identity)
	if !ok {
		t.Fatalf("ReadIdentity() type = %T, want *age.X25519Identity", got)
	}
	if x.String() != identity.String() {
		t.Error("ReadIdentity() returned a different key")
	}

	if _, err := (Age{}).ReadIdentity(); err == nil {
		t.Error("ReadIdentity() with no file error = nil, want error")
	}
}

func TestAge_ReadRecipient(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("failed to generate identity: %v", err)
	}

	if _, err := (Age{Recipients: []string{identity.Recipient().String()}}).ReadRecipient(); err != nil {
		t.Errorf("ReadRecipient() error = %v", err)
	}
	if _, err := (Age{}).ReadRecipient(); err == nil {
		t.Error("ReadRecipient() with no recipients error = nil, want error")
	}
	if _, err := (Age{Recipients: []string{"not-a-key"}}).ReadRecipient(); err == nil {
		t.Error("ReadRecipient() with bad key error = nil, want error")
	}
}

func mustAbs(t *testing.T, p string) string {
	t.Helper()

	abs, err := filepath.Abs(p)
	if err != nil {
		t.Fatalf("filepath.Abs() error = %v", err)
	}
	return abs
}
