package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/hay-kot/claudemd/internal/core"
	"github.com/hay-kot/claudemd/internal/scaffold"
	"github.com/hay-kot/claudemd/pkgs/printer"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

type InitCmd struct {
	coreFlags *core.Flags
	flags     struct {
		Force   bool
		NoInput bool
	}
	answers scaffold.Answers
}

func NewInitCmd(coreFlags *core.Flags) *InitCmd {
	return &InitCmd{coreFlags: coreFlags}
}

func (ic *InitCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:  "init",
		Usage: "Create a project config with the sections claudemd reads",
		Description: `Writes a new project configuration document with PROJECT_DESCRIPTION,
DOMAIN_SPECIFICS and DATABASE_SCHEMA_REF sections.

When attached to a terminal the values are asked for interactively; otherwise
(or with --no-input) the --description, --domain and --schema flags are used.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "description",
				Usage:       "PROJECT_DESCRIPTION section",
				Destination: &ic.answers.ProjectDescription,
			},
			&cli.StringFlag{
				Name:        "domain",
				Usage:       "DOMAIN_SPECIFICS section",
				Destination: &ic.answers.DomainSpecifics,
			},
			&cli.StringFlag{
				Name:        "schema",
				Usage:       "DATABASE_SCHEMA_REF section, e.g. docs/db/schema.md",
				Destination: &ic.answers.DatabaseSchemaRef,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "overwrite an existing config",
				Destination: &ic.flags.Force,
			},
			&cli.BoolFlag{
				Name:        "no-input",
				Usage:       "do not prompt, use flag values only",
				Destination: &ic.flags.NoInput,
			},
		},
		Action: ic.init,
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

func (ic *InitCmd) init(ctx context.Context, c *cli.Command) error {
	env, err := core.SetupEnv(ic.coreFlags)
	if err != nil {
		return err
	}

	path := env.ConfigPath

	if !ic.flags.Force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config %s already exists, use --force to overwrite", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	if !ic.flags.NoInput && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := ic.form().Run(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(scaffold.Build(ic.answers)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.Debug().Str("path", path).Msg("wrote config")

	printer.Ctx(ctx).Success(fmt.Sprintf("Created %s", shortenPath(path)))
	return nil
}

// form asks for each section, prefilled with any flag values.
func (ic *InitCmd) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Project description").
				Description("What the project is and who it is for.").
				Value(&ic.answers.ProjectDescription),
			huh.NewText().
				Title("Domain specifics").
				Description("Terminology, rules and constraints of the problem domain.").
				Value(&ic.answers.DomainSpecifics),
			huh.NewInput().
				Title("Database schema reference").
				Description("Path to schema docs. Leave empty to keep the template default.").
				Placeholder("docs/db/schema.md").
				Value(&ic.answers.DatabaseSchemaRef),
		),
	)
}
