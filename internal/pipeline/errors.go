package pipeline

import (
	"fmt"
	"io/fs"
)

// MissingFileError reports a manifest or detail file that does not exist
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing file: %s", e.Path)
}

// Unwrap lets callers test with errors.Is(err, fs.ErrNotExist).
func (e *MissingFileError) Unwrap() error {
	return fs.ErrNotExist
}

// ParseError reports a file that is not a valid JSON document of the expected shape
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MalformedLengthError reports a length that is not "<number> <unit>"
type MalformedLengthError struct {
	CableID string
	Raw     string
	Err     error
}

func (e *MalformedLengthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed length %q for cable %s: %v", e.Raw, e.CableID, e.Err)
	}
	return fmt.Sprintf("malformed length %q for cable %s", e.Raw, e.CableID)
}

func (e *MalformedLengthError) Unwrap() error {
	return e.Err
}
