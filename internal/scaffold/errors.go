package scaffold

import (
	"errors"
	"fmt"

	"github.com/frsk-dev/devhub/internal/project"
)

// ErrUnknownTemplate is matched by every UnknownTemplateError.
var ErrUnknownTemplate = errors.New("unknown template")

// UnknownTemplateError is returned when no generator is registered for a
// template id.
type UnknownTemplateError struct {
	Template project.TemplateID
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template %q", string(e.Template))
}

func (e *UnknownTemplateError) Is(target error) bool { return target == ErrUnknownTemplate }
