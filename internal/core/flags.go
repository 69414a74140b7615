package core

// EnvPrefix namespaces every environment variable read by the CLI.
const EnvPrefix = "CLAUDEMD_"

const (
	DefaultTemplatePath = "~/Code/project-template/CLAUDE.md"
	DefaultConfigPath   = ".claude/PROJECT_CONFIG.md"
	DefaultOutputPath   = "CLAUDE.md"
	DefaultSettingsPath = ".claude/claudemd.yml"
)

// Flags are the global flags shared by every command. Empty path values fall
// back to the settings file and then to the defaults above.
type Flags struct {
	LogLevel     string
	SettingsPath string
	TemplatePath string
	ConfigPath   string
	OutputPath   string
	IdentityFile string
}
