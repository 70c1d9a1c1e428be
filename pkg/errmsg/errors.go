package errmsg

import "errors"

var (
	ErrUnknownID     = errors.New("errmsg: no message for error id")
	ErrInvalidLocale = errors.New("errmsg: invalid locale")
	ErrInvalidFile   = errors.New("errmsg: invalid message file")
)
