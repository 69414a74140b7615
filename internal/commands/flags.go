package commands

import (
	"github.com/hay-kot/claudemd/internal/core"
	"github.com/hay-kot/claudemd/pkgs/cll"
	"github.com/urfave/cli/v3"
)

var (
	envvars       = cll.EnvWithPrefix(core.EnvPrefix)
	sharedEnvvars = cll.EnvWithFallback(core.EnvPrefix)
)

// GlobalFlags are the root flags bound to flags. Path flags also read the
// unprefixed TEMPLATE_FILE, CONFIG_FILE and OUTPUT_FILE variables.
func GlobalFlags(flags *core.Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Aliases:     []string{"l"},
			Usage:       "set the logging verbosity level",
			Value:       "info",
			Sources:     envvars("LOG_LEVEL"),
			Destination: &flags.LogLevel,
		},
		&cli.StringFlag{
			Name:        "settings",
			Aliases:     []string{"s"},
			Usage:       "path to the optional settings file (default: " + core.DefaultSettingsPath + ")",
			Sources:     envvars("SETTINGS"),
			Destination: &flags.SettingsPath,
		},
		&cli.StringFlag{
			Name:        "template",
			Aliases:     []string{"t"},
			Usage:       "path to the CLAUDE.md template (default: " + core.DefaultTemplatePath + ")",
			Sources:     sharedEnvvars("TEMPLATE_FILE"),
			Destination: &flags.TemplatePath,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to the project config document (default: " + core.DefaultConfigPath + ")",
			Sources:     sharedEnvvars("CONFIG_FILE"),
			Destination: &flags.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "path to write (default: " + core.DefaultOutputPath + ")",
			Sources:     sharedEnvvars("OUTPUT_FILE"),
			Destination: &flags.OutputPath,
		},
		&cli.StringFlag{
			Name:        "identity",
			Aliases:     []string{"i"},
			Usage:       "age identity file for an encrypted project config",
			Sources:     envvars("IDENTITY_FILE"),
			Destination: &flags.IdentityFile,
		},
	}
}

// Commands returns every subcommand in registration order. The first one,
// generate, also becomes the root action.
func Commands(flags *core.Flags) []cll.Registerable {
	return []cll.Registerable{
		NewGenerateCmd(flags),
		NewSectionsCmd(flags),
		NewInitCmd(flags),
		NewEncryptCmd(flags),
		NewHookCmd(flags),
	}
}
