package devices

import "fmt"

// NotFoundError reports that no device exists for the requested id.
type NotFoundError struct {
	ID uint64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("Device not found with id: %d", e.ID)
}

// InvalidTransitionError reports that the state guard rejected a change.
type InvalidTransitionError struct {
	Reason string
}

func (e InvalidTransitionError) Error() string {
	return e.Reason
}

// ValidationError reports input rejected before any state change.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}
