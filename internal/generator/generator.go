// Package generator reads a template and a project configuration, renders
// them and writes the result.
package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"filippo.io/age"
	"github.com/hay-kot/claudemd/internal/renderer"
	"github.com/hay-kot/claudemd/pkgs/fcrypt"
	"github.com/rs/zerolog/log"
)

type Generator struct {
	renderer *renderer.Renderer
}

func New(r *renderer.Renderer) *Generator {
	return &Generator{renderer: r}
}

// Generate runs job. Both inputs are read before anything is written, so a
// missing input never touches the output file.
func (g *Generator) Generate(ctx context.Context, job Job) (Result, error) {
	result := Result{Output: job.OutputPath}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	tmpl, err := os.ReadFile(job.TemplatePath)
	if err != nil {
		return result, inputError(RoleTemplate, job.TemplatePath, err)
	}

	config, err := ReadConfig(job.ConfigPath, job.Identity)
	if err != nil {
		return result, err
	}

	rendered, err := g.renderer.Render(string(tmpl), string(config))
	if err != nil {
		return result, err
	}
	result.Rendered = rendered

	previous, err := os.ReadFile(job.OutputPath)
	switch {
	case err == nil:
		result.Changed = !bytes.Equal(previous, []byte(rendered))
	case errors.Is(err, fs.ErrNotExist):
		result.Changed = true
	case job.Mode == ModeCheck:
		return result, outputError(job.OutputPath, err)
	default:
		// A write-only output can still be replaced.
		log.Debug().Err(err).Str("output", job.OutputPath).Msg("cannot read previous output")
		result.Changed = true
	}

	switch job.Mode {
	case ModeCheck:
		if result.Changed {
			return result, fmt.Errorf("%s: %w", job.OutputPath, ErrOutdated)
		}
		log.Debug().Str("output", job.OutputPath).Msg("output is up to date")
		return result, nil
	case ModeStdout:
		if job.Stdout == nil {
			return result, errors.New("no stdout writer configured")
		}
		if _, err := job.Stdout.Write([]byte(rendered)); err != nil {
			return result, fmt.Errorf("failed to write rendered output: %w", err)
		}
		return result, nil
	}

	if err := writeFileAtomic(job.OutputPath, []byte(rendered)); err != nil {
		return result, outputError(job.OutputPath, err)
	}

	log.Info().
		Str("template", job.TemplatePath).
		Str("config", job.ConfigPath).
		Str("output", job.OutputPath).
		Bool("changed", result.Changed).
		Msg("rendered template")

	return result, nil
}

// ReadConfig reads the project configuration document at path. Paths ending
// in .age are decrypted with identity.
func ReadConfig(path string, identity age.Identity) ([]byte, error) {
	if !fcrypt.IsEncrypted(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, inputError(RoleConfig, path, err)
		}
		return data, nil
	}

	if identity == nil {
		return nil, inputError(RoleConfig, path, errors.New("encrypted config requires an age identity"))
	}

	log.Debug().Str("path", path).Msg("decrypting config")

	data, err := fcrypt.ReadFile(path, identity)
	if err != nil {
		return nil, inputError(RoleConfig, path, err)
	}
	return data, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// into place, so readers see either the old file or the complete new one.
// An existing file keeps its permissions and a symlinked path is written
// through to its target. When the directory does not allow new files but the
// file itself exists, it is overwritten in place.
func writeFileAtomic(path string, data []byte) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	perm := fs.FileMode(0o644)
	info, statErr := os.Stat(path)
	if statErr == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		if errors.Is(err, fs.ErrPermission) && statErr == nil {
			log.Debug().Str("output", path).Msg("output directory is read-only, writing in place")
			return os.WriteFile(path, data, perm)
		}
		return err
	}

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return nil
}
