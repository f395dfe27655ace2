package domain

import "errors"

var (
	ErrInvalidPath          = errors.New("invalid path")
	ErrDiffFailed           = errors.New("diff calculation failed")
	ErrInputTooLarge        = errors.New("input too large for diff engine")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrUnknownEngine        = errors.New("unknown diff engine")
	ErrUnknownSetting       = errors.New("unknown setting")
)
