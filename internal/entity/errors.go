package entity

import "errors"

// ErrUnknownEntity is returned when despawning an ID the registry never
// issued or already removed.
var ErrUnknownEntity = errors.New("entity: unknown entity")
