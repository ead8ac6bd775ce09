package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	sigoerrors "github.com/abatilo/sigo/internal/errors"
)

const tmpInfix = ".sigo-tmp-"

// Record is a task kind persisted as one JSON list per collection file.
type Record interface {
	Collection() string
}

// Identified is a record addressable by task id.
type Identified interface {
	Record
	TaskID() int
}

// validator is implemented by records that can reject their own decoded shape.
type validator interface {
	Validate() error
}

// Store handles collection file operations under a data directory.
//
// Each mutation is a whole-file read-modify-write. Two processes working on
// the same directory can lose updates (last writer wins); the rename only
// guarantees readers never see a partially written file.
type Store struct {
	basePath string
	rename   func(oldpath, newpath string) error
}

// NewStoreWithPath creates a Store rooted at the given data directory.
func NewStoreWithPath(path string) *Store {
	return &Store{basePath: path, rename: os.Rename}
}

// BasePath returns the base path of the store.
func (s *Store) BasePath() string {
	return s.basePath
}

// CollectionPath returns the file backing the named collection.
func (s *Store) CollectionPath(collection string) string {
	return filepath.Join(s.basePath, collection)
}

func collectionPath[T Record](s *Store) string {
	var zero T
	return s.CollectionPath(zero.Collection())
}

// ensureFile creates the collection file containing an empty list if it is absent.
func (s *Store) ensureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	//nolint:gosec // G301: 0755 is appropriate for a user data directory
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return FileCreateError{Path: s.basePath, Err: err}
	}
	//nolint:gosec // G302: 0644 is appropriate for user-readable task files
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return FileCreateError{Path: path, Err: err}
	}
	if _, err = f.WriteString("[]"); err != nil {
		f.Close()
		return FileCreateError{Path: path, Err: err}
	}
	if err = f.Close(); err != nil {
		return FileCreateError{Path: path, Err: err}
	}
	return nil
}

// ReadAll returns every record of the collection, creating an empty file if needed.
func ReadAll[T Record](s *Store) ([]T, error) {
	path := collectionPath[T](s)
	if err := s.ensureFile(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, FileReadError{Path: path, Err: err}
	}

	var records []T
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, ParseError{Path: path, Err: err}
	}
	for _, r := range records {
		if v, ok := any(r).(validator); ok {
			if err = v.Validate(); err != nil {
				return nil, ParseError{Path: path, Err: err}
			}
		}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// WriteAll replaces the collection with records.
// The list is written to a temp sibling and renamed over the target, so the
// target is either the old or the new content and is untouched on failure.
func WriteAll[T Record](s *Store, records []T) error {
	path := collectionPath[T](s)
	if records == nil {
		records = []T{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return EncodeError{Path: path, Err: err}
	}

	//nolint:gosec // G301: 0755 is appropriate for a user data directory
	if err = os.MkdirAll(s.basePath, 0o755); err != nil {
		return FileCreateError{Path: s.basePath, Err: err}
	}

	tmpPath := path + tmpInfix + strconv.Itoa(os.Getpid())
	if err = writeTemp(tmpPath, data); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err = s.rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return FileRenameError{From: tmpPath, To: path, Err: err}
	}
	return nil
}

func writeTemp(path string, data []byte) error {
	//nolint:gosec // G304: path is derived from the configured data directory
	f, err := os.Create(path)
	if err != nil {
		return FileCreateError{Path: path, Err: err}
	}
	if _, err = f.Write(data); err != nil {
		f.Close()
		return FileWriteError{Path: path, Err: err}
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return FileWriteError{Path: path, Err: err}
	}
	if err = f.Close(); err != nil {
		return FileWriteError{Path: path, Err: err}
	}
	return nil
}

// Add appends record to its collection.
func Add[T Record](s *Store, record T) (T, error) {
	records, err := ReadAll[T](s)
	if err != nil {
		return record, err
	}
	records = append(records, record)
	if err = WriteAll(s, records); err != nil {
		return record, err
	}
	return record, nil
}

// FindByID returns the record with the given id.
func FindByID[T Identified](s *Store, id int) (T, error) {
	var zero T
	records, err := ReadAll[T](s)
	if err != nil {
		return zero, err
	}
	for _, r := range records {
		if r.TaskID() == id {
			return r, nil
		}
	}
	return zero, sigoerrors.TaskNotFoundError{ID: id}
}

// DeleteByID removes the record with the given id. A missing id is not an error.
func DeleteByID[T Identified](s *Store, id int) error {
	records, err := ReadAll[T](s)
	if err != nil {
		return err
	}
	records = slices.DeleteFunc(records, func(r T) bool {
		return r.TaskID() == id
	})
	return WriteAll(s, records)
}

// replace swaps the stored record having updated's id for updated.
// The updated record moves to the end of the collection.
func replace[T Identified](s *Store, updated T) error {
	records, err := ReadAll[T](s)
	if err != nil {
		return err
	}
	records = slices.DeleteFunc(records, func(r T) bool {
		return r.TaskID() == updated.TaskID()
	})
	records = append(records, updated)
	return WriteAll(s, records)
}
