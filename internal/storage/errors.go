package storage

import "fmt"

// FileCreateError indicates a collection or temp file could not be created.
type FileCreateError struct {
	Path string
	Err  error
}

func (e FileCreateError) Error() string {
	return fmt.Sprintf("unable to create file %s: %v", e.Path, e.Err)
}

func (e FileCreateError) Unwrap() error { return e.Err }

// FileReadError indicates a collection file could not be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e FileReadError) Error() string {
	return fmt.Sprintf("unable to read file %s: %v", e.Path, e.Err)
}

func (e FileReadError) Unwrap() error { return e.Err }

// FileWriteError indicates the temp file could not be written or flushed.
type FileWriteError struct {
	Path string
	Err  error
}

func (e FileWriteError) Error() string {
	return fmt.Sprintf("unable to write file %s: %v", e.Path, e.Err)
}

func (e FileWriteError) Unwrap() error { return e.Err }

// FileRenameError indicates the temp file could not replace the collection file.
type FileRenameError struct {
	From string
	To   string
	Err  error
}

func (e FileRenameError) Error() string {
	return fmt.Sprintf("unable to rename file %s to %s: %v", e.From, e.To, e.Err)
}

func (e FileRenameError) Unwrap() error { return e.Err }

// ParseError indicates a collection file is not a list of the expected records.
type ParseError struct {
	Path string
	Err  error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("unable to parse file %s: %v", e.Path, e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }

// EncodeError indicates records could not be serialized.
type EncodeError struct {
	Path string
	Err  error
}

func (e EncodeError) Error() string {
	return fmt.Sprintf("unable to encode tasks for %s: %v", e.Path, e.Err)
}

func (e EncodeError) Unwrap() error { return e.Err }
