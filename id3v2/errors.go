package id3v2

import (
	"errors"
	"fmt"
)

// ErrNoTag is returned by Parse when the input does not start with the
// tag magic. It is not a structural error; the caller is expected to
// probe other locations in the file.
var ErrNoTag = errors.New("id3v2: no tag found")

// MalformedError describes structurally invalid input: a truncated
// header or frame, a syncsafe byte with its high bit set, or a frame
// size overrunning the declared tag body.
type MalformedError struct {
	Offset int
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("id3v2: malformed data at offset %d: %s", e.Offset, e.Reason)
}

// UnsupportedVersionError is returned for version bytes other than 2, 3
// or 4. Callers may choose to skip such a tag rather than fail the
// whole file.
type UnsupportedVersionError struct {
	Version byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("id3v2: unsupported version %d", e.Version)
}

func malformed(offset int, format string, args ...interface{}) error {
	return &MalformedError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}
