package modelbind

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants
const (
	ErrMsgUnknownModel   = "unknown model"
	ErrMsgInvalidBody    = "request body could not be parsed"
	ErrMsgObjectNotBound = "stored document could not be read"
)

// ErrCodeModelBind categorizes errors raised by this feature.
const ErrCodeModelBind = "BINDER_MODEL"

// Metadata keys
const (
	MetaKeyModel  = "model"
	MetaKeyObject = "object"
)

// NewUnknownModelError reports a model name missing from the catalog.
func NewUnknownModelError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyModel, ErrMsgUnknownModel).
		WithMetadata(MetaKeyModel, name)
}

// NewInvalidBodyError wraps a body parse failure.
func NewInvalidBodyError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeModelBind, ErrMsgInvalidBody)
}

// NewObjectError wraps a failure to load a stored document.
func NewObjectError(objectName string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeModelBind, ErrMsgObjectNotBound).
		WithMetadata(MetaKeyObject, objectName)
}
