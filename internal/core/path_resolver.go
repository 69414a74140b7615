package core

import (
	"os"
	"path/filepath"
	"strings"
)

// PathResolver turns relative paths, or paths starting with '~', into
// absolute paths. The zero value resolves relative paths against the working
// directory.
type PathResolver struct {
	configDir string // root for relative paths
}

func NewPathResolver(configDir string) PathResolver {
	return PathResolver{configDir: configDir}
}

func (pr PathResolver) Resolve(ip string) (string, error) {
	// Handle home directory expansion
	if strings.HasPrefix(ip, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		ip = filepath.Join(homeDir, strings.TrimPrefix(ip, "~"))
	}

	// If already absolute, return as-is
	if filepath.IsAbs(ip) {
		return filepath.Clean(ip), nil
	}

	// Resolve relative to the settings directory
	if pr.configDir != "" {
		return filepath.Join(pr.configDir, ip), nil
	}

	// Fallback to absolute path from current directory
	absPath, err := filepath.Abs(ip)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
