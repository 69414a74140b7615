package generator

import (
	"io"

	"filippo.io/age"
)

type Mode int

const (
	// ModeWrite replaces the output file.
	ModeWrite Mode = iota
	// ModeCheck compares the rendered document with the output file.
	ModeCheck
	// ModeStdout writes the rendered document to Job.Stdout.
	ModeStdout
)

type Job struct {
	TemplatePath string
	ConfigPath   string // decrypted with Identity when it ends in .age
	OutputPath   string

	Identity age.Identity
	Mode     Mode
	Stdout   io.Writer
}

type Result struct {
	Output   string
	Rendered string
	Changed  bool // rendered content differs from the previous output
}
