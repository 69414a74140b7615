package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/claudemd/internal/core"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

const (
	hookMarkerStart = "# >>> claudemd pre-commit hook"
	hookMarkerEnd   = "# <<< claudemd pre-commit hook"
	hookShebang     = "#!/bin/sh"
)

type HookCmd struct {
	coreFlags *core.Flags
}

func NewHookCmd(coreFlags *core.Flags) *HookCmd {
	return &HookCmd{coreFlags: coreFlags}
}

func (hc *HookCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:  "hook",
		Usage: "manage the git pre-commit hook for claudemd",
		Commands: []*cli.Command{
			{
				Name:  "install",
				Usage: "install a pre-commit hook that fails when CLAUDE.md is out of date",
				Description: `Installs a pre-commit hook that runs 'claudemd generate --check' before each
commit. The commit is rejected when CLAUDE.md differs from what the template
and project config would generate.

If a pre-commit hook already exists, the claudemd check is appended to it.`,
				Action: hc.install,
			},
			{
				Name:   "uninstall",
				Usage:  "remove the claudemd section from the pre-commit hook",
				Action: hc.uninstall,
			},
		},
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

func (hc *HookCmd) install(ctx context.Context, cmd *cli.Command) error {
	gitDir, err := findGitDir()
	if err != nil {
		return fmt.Errorf("failed to find .git directory: %w", err)
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	hookPath := filepath.Join(hooksDir, "pre-commit")

	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return fmt.Errorf("failed to create hooks directory: %w", err)
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get claudemd executable path: %w", err)
	}

	existing, err := os.ReadFile(hookPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read pre-commit hook: %w", err)
	}

	content, changed := addHookSection(string(existing), hookCommand(exe, hc.coreFlags, filepath.Dir(gitDir)))
	if !changed {
		log.Info().Str("path", hookPath).Msg("claudemd pre-commit hook already installed")
		return nil
	}

	if err := os.WriteFile(hookPath, []byte(content), 0o755); err != nil {
		return fmt.Errorf("failed to write pre-commit hook: %w", err)
	}

	log.Info().Str("path", hookPath).Msg("installed pre-commit hook")
	return nil
}

func (hc *HookCmd) uninstall(ctx context.Context, cmd *cli.Command) error {
	gitDir, err := findGitDir()
	if err != nil {
		return fmt.Errorf("failed to find .git directory: %w", err)
	}

	hookPath := filepath.Join(gitDir, "hooks", "pre-commit")

	existing, err := os.ReadFile(hookPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Msg("no pre-commit hook found")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read pre-commit hook: %w", err)
	}

	content, changed := removeHookSection(string(existing))
	if !changed {
		log.Info().Msg("claudemd hook not found in pre-commit")
		return nil
	}

	// Nothing left but the shebang we wrote.
	if trimmed := strings.TrimSpace(content); trimmed == "" || trimmed == hookShebang {
		if err := os.Remove(hookPath); err != nil {
			return fmt.Errorf("failed to remove pre-commit hook: %w", err)
		}
		log.Info().Str("path", hookPath).Msg("removed empty pre-commit hook")
		return nil
	}

	if err := os.WriteFile(hookPath, []byte(content), 0o755); err != nil {
		return fmt.Errorf("failed to write pre-commit hook: %w", err)
	}

	log.Info().Str("path", hookPath).Msg("removed claudemd section from pre-commit hook")
	return nil
}

// hookCommand builds the check command, passing along any explicit path
// flags made relative to the repository root where possible.
func hookCommand(exe string, flags *core.Flags, repoRoot string) string {
	args := []string{shellQuote(exe)}

	for _, f := range []struct {
		name  string
		value string
	}{
		{"settings", flags.SettingsPath},
		{"template", flags.TemplatePath},
		{"config", flags.ConfigPath},
		{"output", flags.OutputPath},
		{"identity", flags.IdentityFile},
	} {
		if f.value == "" {
			continue
		}

		value := f.value
		if abs, err := filepath.Abs(value); err == nil {
			if rel, err := filepath.Rel(repoRoot, abs); err == nil && !strings.HasPrefix(rel, "..") {
				value = rel
			}
		}

		args = append(args, "--"+f.name+"="+shellQuote(value))
	}

	return strings.Join(append(args, "generate", "--check"), " ")
}

// shellQuote wraps s in single quotes for /bin/sh.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// addHookSection appends the claudemd section to a hook script. It reports
// false when the section is already present.
func addHookSection(existing, command string) (string, bool) {
	if strings.Contains(existing, hookMarkerStart) {
		return existing, false
	}

	section := hookMarkerStart + "\n" + command + " || exit 1\n" + hookMarkerEnd + "\n"

	if strings.TrimSpace(existing) == "" {
		return hookShebang + "\n\n" + section, true
	}

	if !strings.HasSuffix(existing, "\n") {
		existing += "\n"
	}

	return existing + "\n" + section, true
}

// removeHookSection strips the claudemd section from a hook script. It
// reports false when there is no section to remove.
func removeHookSection(content string) (string, bool) {
	start := strings.Index(content, hookMarkerStart)
	if start < 0 {
		return content, false
	}

	end := strings.Index(content[start:], hookMarkerEnd)
	if end < 0 {
		return content, false
	}
	end += start + len(hookMarkerEnd)

	// Drop the newline closing the end marker and the blank line we inserted
	// before the start marker.
	if end < len(content) && content[end] == '\n' {
		end++
	}
	if start > 0 && strings.HasSuffix(content[:start], "\n\n") {
		start--
	}

	return content[:start] + content[end:], true
}

// findGitDir finds the .git directory by walking up from current directory
func findGitDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return gitDir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("not in a git repository")
		}
		dir = parent
	}
}
