package storage

import "errors"

// Sentinel kinds for save-slot errors.
var (
	ErrSlotNotFound = errors.New("save slot not found")
	ErrInvalidSlot  = errors.New("invalid save slot name")
)
