package sysconfig

import "errors"

var (
	// ErrConfigUnavailable is logged when the backing store cannot be read; callers receive defaults instead
	ErrConfigUnavailable = errors.New("system config unavailable")
	ErrConfigWriteFailed = errors.New("failed to write system config")
)
