// Package commands contains the CLI commands for the application
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"filippo.io/age"
	"github.com/charmbracelet/lipgloss"
	"github.com/hay-kot/claudemd/internal/core"
	"github.com/hay-kot/claudemd/pkgs/fcrypt"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// configPath returns the configuration document to read. When the plain file
// is missing but an encrypted copy exists next to it, the copy is used.
func configPath(env core.Env) string {
	path := env.ConfigPath
	if fcrypt.IsEncrypted(path) {
		return path
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if _, err := os.Stat(path + fcrypt.Ext); err == nil {
			log.Debug().Str("path", path+fcrypt.Ext).Msg("using encrypted config")
			return path + fcrypt.Ext
		}
	}

	return path
}

// configIdentity returns the age identity needed to read path, or nil when
// the config is not encrypted.
func configIdentity(env core.Env, path string) (age.Identity, error) {
	if !fcrypt.IsEncrypted(path) {
		return nil, nil
	}

	identity, err := env.Settings.Age.ReadIdentity()
	if err != nil {
		return nil, fmt.Errorf("config %s is encrypted: %w", path, err)
	}
	return identity, nil
}

// shortenPath returns path relative to the working directory when it lives
// beneath it.
func shortenPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(wd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}

	return rel
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true)
	bracketStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

// styledHeader renders "-- [LABEL] name ----" filled to width.
func styledHeader(label, name string, width int) string {
	left := fmt.Sprintf("%s %s%s%s %s ",
		dividerStyle.Render("--"),
		bracketStyle.Render("["),
		labelStyle.Render(label),
		bracketStyle.Render("]"),
		nameStyle.Render(name),
	)

	remaining := max(width-lipgloss.Width(left), 0)
	return left + dividerStyle.Render(strings.Repeat("-", remaining))
}
