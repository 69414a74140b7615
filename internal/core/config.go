package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"filippo.io/age"
	"github.com/goccy/go-yaml"
	"github.com/hay-kot/claudemd/internal/renderer"
	"github.com/hay-kot/claudemd/pkgs/fcrypt"
	"github.com/rs/zerolog/log"
)

// Settings is the optional YAML settings file. Relative paths inside it are
// resolved against the directory holding the file.
type Settings struct {
	Template string             `yaml:"template"`
	Config   string             `yaml:"config"`
	Output   string             `yaml:"output"`
	Bindings []renderer.Binding `yaml:"bindings"`
	Age      Age                `yaml:"age"`
}

// Env is the resolved runtime environment for a command.
type Env struct {
	Settings     Settings
	SettingsPath string // empty when no settings file was loaded

	TemplatePath string
	ConfigPath   string
	OutputPath   string
}

// SetupEnv loads the settings file and resolves every path. Precedence is
// flag or environment variable, then settings file, then default.
func SetupEnv(flags *Flags) (Env, error) {
	env := Env{}

	settingsPath := flags.SettingsPath
	explicit := settingsPath != ""
	if !explicit {
		settingsPath = DefaultSettingsPath
	}

	cwd := PathResolver{}

	settingsAbs, err := cwd.Resolve(settingsPath)
	if err != nil {
		return env, err
	}

	settings, err := LoadSettings(settingsAbs)
	switch {
	case err == nil:
		env.Settings = settings
		env.SettingsPath = settingsAbs
		log.Debug().Str("path", settingsAbs).Msg("loaded settings file")
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		log.Debug().Str("path", settingsAbs).Msg("no settings file, using defaults")
	default:
		return env, fmt.Errorf("failed to load settings file %s: %w", settingsPath, err)
	}

	// Settings paths are relative to the settings file, everything else to
	// the working directory.
	fromSettings := NewPathResolver(filepath.Dir(settingsAbs))

	resolve := func(flagValue, settingsValue, fallback string) (string, error) {
		switch {
		case flagValue != "":
			return cwd.Resolve(flagValue)
		case settingsValue != "":
			return fromSettings.Resolve(settingsValue)
		default:
			return cwd.Resolve(fallback)
		}
	}

	if env.TemplatePath, err = resolve(flags.TemplatePath, env.Settings.Template, DefaultTemplatePath); err != nil {
		return env, err
	}
	if env.ConfigPath, err = resolve(flags.ConfigPath, env.Settings.Config, DefaultConfigPath); err != nil {
		return env, err
	}
	if env.OutputPath, err = resolve(flags.OutputPath, env.Settings.Output, DefaultOutputPath); err != nil {
		return env, err
	}

	if flags.IdentityFile != "" {
		env.Settings.Age.IdentityFile = flags.IdentityFile
	} else if env.Settings.Age.IdentityFile != "" {
		if env.Settings.Age.IdentityFile, err = fromSettings.Resolve(env.Settings.Age.IdentityFile); err != nil {
			return env, err
		}
	}

	log.Debug().
		Str("template", env.TemplatePath).
		Str("config", env.ConfigPath).
		Str("output", env.OutputPath).
		Int("extra-bindings", len(env.Settings.Bindings)).
		Msg("resolved environment")

	return env, nil
}

// LoadSettings reads and decodes a settings file.
func LoadSettings(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, err
	}

	return s, nil
}

type Age struct {
	Recipients   []string `yaml:"recipients"`
	IdentityFile string   `yaml:"identity_file"`
}

func (a Age) ReadIdentity() (age.Identity, error) {
	if a.IdentityFile == "" {
		return nil, errors.New("no age identity file configured")
	}

	identityData, err := os.ReadFile(a.IdentityFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read identity file %s: %w", a.IdentityFile, err)
	}

	// Parse the identity file, skipping comments and empty lines
	var keyLine string
	for _, line := range strings.Split(string(identityData), "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			keyLine = line
			break
		}
	}

	if keyLine == "" {
		return nil, fmt.Errorf("no valid key found in identity file %s", a.IdentityFile)
	}

	identity, err := fcrypt.LoadPrivateKey(keyLine)
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}

	return identity, nil
}

// ReadRecipient returns the first configured recipient.
func (a Age) ReadRecipient() (age.Recipient, error) {
	if len(a.Recipients) == 0 {
		return nil, errors.New("no age recipients configured")
	}

	return fcrypt.LoadPublicKey(strings.TrimSpace(a.Recipients[0]))
}
