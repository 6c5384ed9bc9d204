package database

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// Entity names used in OpError.
const (
	EntitySetting      = "setting"
	EntityContact      = "contact message"
	EntitySubscription = "subscription"
	EntityMeditation   = "meditation session"
	EntityWorkoutLog   = "workout log"
)

type OpError struct {
	Op       string
	Resource string
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(resource, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, ID: id, Err: err}
}
