package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrInputUnavailable matches every error reading the template or the
	// configuration document.
	ErrInputUnavailable = errors.New("input unavailable")
	// ErrOutputUnwritable matches every error writing the output file.
	ErrOutputUnwritable = errors.New("output unwritable")
	// ErrOutdated is returned in check mode when the output differs from what
	// would be generated.
	ErrOutdated = errors.New("output is out of date")
)

type Role string

const (
	RoleTemplate Role = "template"
	RoleConfig   Role = "config"
	RoleOutput   Role = "output"
)

// FileError is a fatal I/O failure on one of the three files a job touches.
type FileError struct {
	Role Role
	Path string
	Err  error
}

func inputError(role Role, path string, err error) *FileError {
	return &FileError{Role: role, Path: path, Err: err}
}

func outputError(path string, err error) *FileError {
	return &FileError{Role: RoleOutput, Path: path, Err: err}
}

func (fe *FileError) Error() string {
	if fe.Role == RoleOutput {
		return fmt.Sprintf("failed to write output file %s: %v", fe.Path, fe.Err)
	}
	return fmt.Sprintf("failed to read %s file %s: %v", fe.Role, fe.Path, fe.Err)
}

func (fe *FileError) Unwrap() error {
	return fe.Err
}

// Is matches ErrInputUnavailable or ErrOutputUnwritable by role.
func (fe *FileError) Is(target error) bool {
	switch target {
	case ErrInputUnavailable:
		return fe.Role != RoleOutput
	case ErrOutputUnwritable:
		return fe.Role == RoleOutput
	}
	return false
}
