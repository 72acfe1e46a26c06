package convert

import (
	"fmt"
	"reflect"

	"github.com/itsatony/go-cuserr"
)

// Error message constants
const (
	ErrMsgConversionFailed = "value conversion failed"
	ErrMsgUnsupportedType  = "unsupported target type"
)

// ErrCodeConvert categorizes every conversion error.
const ErrCodeConvert = "BINDER_CONVERT"

// Metadata keys attached to conversion errors
const (
	MetaKeyTargetType = "target_type"
	MetaKeyValue      = "value"
)

// NewConversionError reports that raw could not be turned into t.
func NewConversionError(raw any, t reflect.Type, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConvert, ErrMsgConversionFailed).
		WithMetadata(MetaKeyTargetType, t.String()).
		WithMetadata(MetaKeyValue, fmt.Sprint(raw))
}

// NewUnsupportedTypeError reports a target type no rule or family handles.
func NewUnsupportedTypeError(t reflect.Type) error {
	return cuserr.NewValidationError(ErrCodeConvert, ErrMsgUnsupportedType).
		WithMetadata(MetaKeyTargetType, t.String())
}
