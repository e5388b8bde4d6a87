package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ErrInvalidName is matched by every NameError.
var ErrInvalidName = errors.New("invalid project name")

// NameError reports a project name that does not match ^[A-Za-z0-9_-]+$.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("invalid project name %q: may only include letters, numbers, underscores and hyphens", e.Name)
}

func (e *NameError) Is(target error) bool { return target == ErrInvalidName }

// ValidateName returns a *NameError unless name is non-empty and made only of
// letters, digits, underscores and hyphens.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return &NameError{Name: name}
	}
	return nil
}

// Request is one scaffolding request. It is created once per invocation and
// not modified afterwards.
type Request struct {
	Name     string
	Template TemplateID
	// Dir is the absolute directory the project is written into.
	Dir string
}

// NewRequest validates the name and resolves the project directory as
// <parentDir>/<name>.
func NewRequest(name string, template TemplateID, parentDir string) (Request, error) {
	if err := ValidateName(name); err != nil {
		return Request{}, err
	}
	dir, err := filepath.Abs(filepath.Join(parentDir, name))
	if err != nil {
		return Request{}, fmt.Errorf("resolving project directory: %w", err)
	}
	return Request{Name: name, Template: template, Dir: dir}, nil
}
