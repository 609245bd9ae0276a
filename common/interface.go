package common

import "time"

// FileLoggingHandler defines the behavior of a component able to save logs in files
type FileLoggingHandler interface {
	ChangeFileLifeSpan(newDuration time.Duration, newSizeInMB uint64) error
	Close() error
	IsInterfaceNil() bool
}
