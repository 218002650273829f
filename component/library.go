package component

import (
	"sort"
)

// Library stores animation clips by id. It is filled once by Load and is
// read-only afterwards, so Get may be called from any goroutine without
// locking. Load itself must not race with readers.
type Library struct {
	clips  map[ClipID]*Clip
	loaded bool
}

// NewLibrary creates a library and loads clips into it.
func NewLibrary(clips []*Clip) (*Library, error) {
	l := &Library{}
	if err := l.Load(clips); err != nil {
		return nil, err
	}
	return l, nil
}

// Load populates the library. It fails with *DuplicateClipError if two clips
// share an id, in which case nothing is stored, and with ErrLibraryLoaded if
// the library was already loaded.
func (l *Library) Load(clips []*Clip) error {
	if l.loaded {
		return ErrLibraryLoaded
	}
	m := make(map[ClipID]*Clip, len(clips))
	for _, c := range clips {
		if c == nil {
			continue
		}
		if _, ok := m[c.ID]; ok {
			return &DuplicateClipError{ID: c.ID}
		}
		m[c.ID] = c
	}
	l.clips = m
	l.loaded = true
	return nil
}

// Get returns the clip for id or an *UnknownClipError.
func (l *Library) Get(id ClipID) (*Clip, error) {
	if l == nil {
		return nil, &UnknownClipError{ID: id}
	}
	c, ok := l.clips[id]
	if !ok {
		return nil, &UnknownClipError{ID: id}
	}
	return c, nil
}

// Has reports whether id is present.
func (l *Library) Has(id ClipID) bool {
	if l == nil {
		return false
	}
	_, ok := l.clips[id]
	return ok
}

// Len returns the number of clips.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.clips)
}

// IDs returns every clip id sorted by namespace, then path.
func (l *Library) IDs() []ClipID {
	if l == nil {
		return nil
	}
	ids := make([]ClipID, 0, len(l.clips))
	for id := range l.clips {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Namespace != ids[j].Namespace {
			return ids[i].Namespace < ids[j].Namespace
		}
		return ids[i].Path < ids[j].Path
	})
	return ids
}
