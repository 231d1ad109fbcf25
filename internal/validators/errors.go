package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNilConfig         = errors.New("resolved config is nil")
	ErrEmptyClass        = errors.New("entity class is empty")
	ErrInvalidEntityName = errors.New("invalid entity name")
	ErrNameMismatch      = errors.New("entity name differs from its key")
	ErrOrderMismatch     = errors.New("entity order does not match entities")
)
