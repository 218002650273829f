package component

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateClip matches any *DuplicateClipError.
	ErrDuplicateClip = errors.New("duplicate clip")

	// ErrUnknownClip matches any *UnknownClipError.
	ErrUnknownClip = errors.New("unknown clip")

	// ErrLibraryLoaded is returned by a second successful Load.
	ErrLibraryLoaded = errors.New("animation library already loaded")
)

// DuplicateClipError is returned when two clips share an id during Load.
type DuplicateClipError struct {
	ID ClipID
}

func (e *DuplicateClipError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateClip, e.ID)
}

// Is lets errors.Is(err, ErrDuplicateClip) match.
func (e *DuplicateClipError) Is(target error) bool {
	return target == ErrDuplicateClip
}

// UnknownClipError is returned when a requested clip is not in the library.
type UnknownClipError struct {
	ID ClipID
}

func (e *UnknownClipError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownClip, e.ID)
}

// Is lets errors.Is(err, ErrUnknownClip) match.
func (e *UnknownClipError) Is(target error) bool {
	return target == ErrUnknownClip
}
