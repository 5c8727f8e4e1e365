package workflowengine

import (
	"fmt"

	"github.com/pkg/errors"
)

// EngineError marks a business-rule violation the caller should surface to
// the user, as opposed to an infrastructure failure.
type EngineError struct {
	msg string
}

func (e *EngineError) Error() string {
	return e.msg
}

func newEngineError(format string, args ...interface{}) *EngineError {
	return &EngineError{msg: fmt.Sprintf(format, args...)}
}

func IsEngineError(err error) bool {
	var engineErr *EngineError
	return errors.As(err, &engineErr)
}
