package service

import "fmt"

// PersistenceError is the one error kind the repositories raise: the
// backing store reported a failure. It is always propagated, never
// swallowed; deciding whether to retry, log or revert local state is
// the caller's job.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}
