package engine

import "errors"

var (
	// ErrInvalidArgument is wrapped when a search parameter is out of range.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAborted accompanies a best-so-far Result when the search was stopped.
	ErrAborted = errors.New("search aborted")
)
