package binding

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/itsatony/go-cuserr"
)

// Error message constants
const (
	ErrMsgNilLogger        = "binding context requires a logger"
	ErrMsgPropertyPanic    = "property binding panicked"
	ErrMsgUnsupportedModel = "model type must be a struct or a pointer to a struct"
	ErrMsgUnsupportedField = "field type cannot be bound"
)

// ErrCodeBinding categorizes errors raised by the binding engine.
const ErrCodeBinding = "BINDER_BIND"

// MetaKeyType holds the offending Go type.
const MetaKeyType = "type"

// NewNilLoggerError is returned when a Context is created without a logger.
func NewNilLoggerError() error {
	return cuserr.NewValidationError(ErrCodeBinding, ErrMsgNilLogger)
}

// NewPanicError wraps a value recovered while binding a property.
func NewPanicError(recovered any) error {
	return fmt.Errorf("%s: %v", ErrMsgPropertyPanic, recovered)
}

// NewUnsupportedModelError reports a bind target that is not a struct.
func NewUnsupportedModelError(t reflect.Type) error {
	return cuserr.NewValidationError(ErrCodeBinding, ErrMsgUnsupportedModel).
		WithMetadata(MetaKeyType, t.String())
}

// NewUnsupportedFieldError reports data present for a field whose type
// neither the converter nor the resolver handles.
func NewUnsupportedFieldError(t reflect.Type) error {
	return cuserr.NewValidationError(ErrCodeBinding, ErrMsgUnsupportedField).
		WithMetadata(MetaKeyType, t.String())
}

// faultText renders err for a Problem, including the wrapped cause when the
// error's own message leaves it out.
func faultText(err error) string {
	text := err.Error()
	if cause := errors.Unwrap(err); cause != nil && !strings.Contains(text, cause.Error()) {
		text += ": " + cause.Error()
	}
	return text
}
