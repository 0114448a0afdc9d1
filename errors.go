package aviary

import "errors"

var (
	// ErrMemberNotFound is returned when the archive has no member file for
	// the requested part name.
	ErrMemberNotFound = errors.New("archive member not found")

	// ErrBadPrefix is returned when a member does not start with the
	// JavaScript assignment prefix the export writer emits.
	ErrBadPrefix = errors.New("unexpected member prefix")
)
