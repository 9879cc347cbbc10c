package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	// ErrUnrecoverable marks a worker failure that restarting cannot
	// cure, such as a listener that fails to bind. The supervisor stops
	// instead of crash-looping.
	ErrUnrecoverable = fmt.Errorf("unrecoverable worker failure")
)
