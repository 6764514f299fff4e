package kinepredict

import "errors"

var (
	// ErrInvalidArgument is returned when a structure is constructed with
	// parameters outside of their domain.
	ErrInvalidArgument = errors.New("kinepredict: invalid argument")

	// ErrEmptyContainer is returned by Peek and Pop on an empty priority queue.
	ErrEmptyContainer = errors.New("kinepredict: empty container")
)
