package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hay-kot/claudemd/internal/core"
	"github.com/hay-kot/claudemd/internal/generator"
	"github.com/hay-kot/claudemd/internal/renderer"
	"github.com/hay-kot/claudemd/pkgs/printer"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

type GenerateCmd struct {
	coreFlags *core.Flags
	flags     struct {
		Check  bool
		Stdout bool
	}
}

func NewGenerateCmd(coreFlags *core.Flags) *GenerateCmd {
	return &GenerateCmd{coreFlags: coreFlags}
}

func (gc *GenerateCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate CLAUDE.md from the template and project config",
		Description: `Reads the template and the project configuration document, replaces
{{PROJECT_DESCRIPTION}} and {{DOMAIN_SPECIFICS}} with the matching "## NAME"
sections and, when DATABASE_SCHEMA_REF is set, points the schema review line at
it. The output file is replaced atomically.

This is also what runs when claudemd is called without a command.

Extra bindings can be declared in the settings file:
  bindings:
    - section: TEAM
      target: "{{TEAM}}"
    - section: ONCALL
      target: "Oncall: none"
      format: "Oncall: {value}"
      when: value != ""`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "check",
				Usage:       "exit non-zero when the output is missing or out of date, without writing it",
				Destination: &gc.flags.Check,
			},
			&cli.BoolFlag{
				Name:        "stdout",
				Usage:       "print the rendered document instead of writing the output file",
				Destination: &gc.flags.Stdout,
			},
		},
		Action: gc.generate,
	}

	app.Commands = append(app.Commands, cmd)

	if app.Action == nil {
		app.Action = gc.generate
	}

	return app
}

func (gc *GenerateCmd) generate(ctx context.Context, c *cli.Command) error {
	if gc.flags.Check && gc.flags.Stdout {
		return errors.New("--check and --stdout cannot be combined")
	}

	env, err := core.SetupEnv(gc.coreFlags)
	if err != nil {
		return err
	}

	r, err := renderer.New(env.Settings.Bindings...)
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	job := generator.Job{
		TemplatePath: env.TemplatePath,
		ConfigPath:   configPath(env),
		OutputPath:   env.OutputPath,
		Mode:         generator.ModeWrite,
	}

	job.Identity, err = configIdentity(env, job.ConfigPath)
	if err != nil {
		return err
	}

	switch {
	case gc.flags.Check:
		job.Mode = generator.ModeCheck
	case gc.flags.Stdout:
		job.Mode = generator.ModeStdout
		job.Stdout = os.Stdout
		if w, ok := printer.GetWriter(ctx); ok {
			job.Stdout = w
		}
	}

	log.Debug().
		Str("template", job.TemplatePath).
		Str("config", job.ConfigPath).
		Str("output", job.OutputPath).
		Int("mode", int(job.Mode)).
		Msg("generate")

	res, err := generator.New(r).Generate(ctx, job)
	if err != nil {
		if errors.Is(err, generator.ErrOutdated) {
			return fmt.Errorf("%w: run 'claudemd generate' to update it", err)
		}
		return err
	}

	p := printer.Ctx(ctx)
	switch job.Mode {
	case generator.ModeCheck:
		p.Success(fmt.Sprintf("%s is up to date", shortenPath(res.Output)))
	case generator.ModeWrite:
		p.Done(fmt.Sprintf("Generated %s from template + project config", shortenPath(res.Output)))
	}

	return nil
}
