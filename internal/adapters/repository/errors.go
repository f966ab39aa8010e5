package repository

import "errors"

// Sentinel kinds for snapshot store errors.
var (
	ErrEmptyStore = errors.New("no world snapshot loaded")
)
