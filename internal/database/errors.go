package database

import (
	"errors"
	"fmt"
)

var (
	ErrDatabaseCorrupted = errors.New("database file is corrupted")
	ErrNotFound          = errors.New("not found")
)

type OpError struct {
	Op       string
	Resource string
	ID       string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapTimerErr(op string, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "timer", ID: id, Err: err}
}

func wrapSettingErr(op string, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "setting", ID: key, Err: err}
}
