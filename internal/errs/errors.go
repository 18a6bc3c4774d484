package errs

import "errors"

var (
	ErrBackingRegion  = errors.New("bumppool: backing region unavailable")
	ErrInvalidAddress = errors.New("bumppool: invalid address")
	ErrClosed         = errors.New("bumppool: closed")
	ErrBadArgument    = errors.New("bumppool: bad argument")
)
