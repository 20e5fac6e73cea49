package session

import "fmt"

// Stage labels where in a session's lifecycle a failure happened.
type Stage string

const (
	StageReply   Stage = "reply"
	StageStore   Stage = "store"
	StageArchive Stage = "archive"
)

// SessionError wraps a failure with the lifecycle stage it occurred in, so
// callers can log and present failures uniformly.
type SessionError struct {
	Stage Stage
	Err   error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session %s: %v", e.Stage, e.Err)
}

func (e *SessionError) Unwrap() error { return e.Err }

// NewSessionError wraps err with a stage label; a nil err returns nil.
func NewSessionError(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &SessionError{Stage: stage, Err: err}
}
