package systems

import "errors"

var (
	ErrDuplicateSystem = errors.New("duplicate system")
	ErrUnknownSystem   = errors.New("unknown system")
)
