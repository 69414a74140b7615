package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/hay-kot/claudemd/internal/core"
	"github.com/hay-kot/claudemd/internal/generator"
	"github.com/hay-kot/claudemd/internal/renderer"
	"github.com/hay-kot/claudemd/internal/sections"
	"github.com/hay-kot/claudemd/pkgs/printer"
	"github.com/hay-kot/claudemd/pkgs/styles"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

type SectionsCmd struct {
	coreFlags *core.Flags
}

func NewSectionsCmd(coreFlags *core.Flags) *SectionsCmd {
	return &SectionsCmd{coreFlags: coreFlags}
}

func (sc *SectionsCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:    "sections",
		Aliases: []string{"ls"},
		Usage:   "List the sections of the project config and the bindings they feed",
		Action:  sc.sections,
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

func (sc *SectionsCmd) sections(ctx context.Context, c *cli.Command) error {
	env, err := core.SetupEnv(sc.coreFlags)
	if err != nil {
		return err
	}

	r, err := renderer.New(env.Settings.Bindings...)
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	path := configPath(env)
	identity, err := configIdentity(env, path)
	if err != nil {
		return err
	}

	data, err := generator.ReadConfig(path, identity)
	if err != nil {
		return err
	}
	config := string(data)

	secs := sections.Parse(config)
	log.Debug().Str("config", path).Int("sections", len(secs)).Msg("parsed config")

	p := printer.Ctx(ctx)
	w, ok := printer.GetWriter(ctx)
	if !ok {
		w = os.Stdout
	}

	_, _ = fmt.Fprintln(w, styledHeader("CONFIG", shortenPath(path), terminalWidth()))
	p.LineBreak()

	items := make([]string, 0, len(secs))
	for _, s := range secs {
		items = append(items, fmt.Sprintf("%-24s line %-4d %s", s.Name, s.Line, describeBody(s.Body)))
	}
	p.List("Sections", items)

	if dups := sections.Duplicates(secs); len(dups) > 0 {
		p.LineBreak()
		p.List("Duplicates (first occurrence is used)", dups)
	}

	steps, err := r.Plan(config)
	if err != nil {
		return err
	}

	statuses := make([]printer.StatusListItem, 0, len(steps))
	for _, s := range steps {
		statuses = append(statuses, printer.StatusListItem{
			Ok:     s.Applies,
			Status: s.Binding.Section,
			Detail: bindingDetail(s),
		})
	}

	p.LineBreak()
	p.StatusList("Bindings", statuses)

	return nil
}

func describeBody(body string) string {
	if body == "" {
		return "(empty)"
	}

	n := strings.Count(body, "\n") + 1
	if n == 1 {
		return "1 line"
	}
	return fmt.Sprintf("%d lines", n)
}

const maxTargetWidth = 40

func bindingDetail(s renderer.Step) string {
	target := ansi.Truncate(s.Binding.Target, maxTargetWidth, "...")

	if !s.Applies {
		return fmt.Sprintf("%s %q skipped", styles.Arrow, target)
	}
	if s.Value == "" {
		return fmt.Sprintf("%s %q replaced with empty text", styles.Arrow, target)
	}
	return fmt.Sprintf("%s %q replaced", styles.Arrow, target)
}
