package component

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryLoadAndGet(t *testing.T) {
	a := testClip("simple/air_gather_hands", 20)
	b := testClip("complex/air_gather_hands", 24)

	lib, err := NewLibrary([]*Clip{a, b, nil})
	require.NoError(t, err)
	assert.Equal(t, 2, lib.Len())

	got, err := lib.Get(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)
	assert.True(t, lib.Has(b.ID))
}

func TestLibraryGetUnknown(t *testing.T) {
	lib, err := NewLibrary([]*Clip{testClip("simple/a", 1)})
	require.NoError(t, err)

	id := ClipID{Namespace: "magus", Path: "simple/missing"}
	clip, err := lib.Get(id)
	assert.Nil(t, clip)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownClip))

	var unknown *UnknownClipError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, id, unknown.ID)
	assert.Contains(t, err.Error(), "magus:simple/missing")
}

func TestLibraryNilGet(t *testing.T) {
	var lib *Library
	_, err := lib.Get(ClipID{Namespace: "magus", Path: "x"})
	assert.ErrorIs(t, err, ErrUnknownClip)
	assert.Equal(t, 0, lib.Len())
	assert.Nil(t, lib.IDs())
}

func TestLibraryDuplicate(t *testing.T) {
	lib := &Library{}
	err := lib.Load([]*Clip{
		testClip("simple/a", 1),
		testClip("simple/b", 2),
		testClip("simple/a", 3),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateClip)

	var dup *DuplicateClipError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "simple/a", dup.ID.Path)

	// a failed load stores nothing and can be retried
	assert.Equal(t, 0, lib.Len())
	require.NoError(t, lib.Load([]*Clip{testClip("simple/a", 1)}))
	assert.Equal(t, 1, lib.Len())
}

func TestLibraryLoadOnce(t *testing.T) {
	lib := &Library{}
	require.NoError(t, lib.Load(nil))
	assert.ErrorIs(t, lib.Load([]*Clip{testClip("simple/a", 1)}), ErrLibraryLoaded)
	assert.Equal(t, 0, lib.Len())
}

func TestLibraryIDsSorted(t *testing.T) {
	lib, err := NewLibrary([]*Clip{
		{ID: ClipID{Namespace: "zeta", Path: "a"}},
		{ID: ClipID{Namespace: "magus", Path: "simple/b"}},
		{ID: ClipID{Namespace: "magus", Path: "complex/b"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []ClipID{
		{Namespace: "magus", Path: "complex/b"},
		{Namespace: "magus", Path: "simple/b"},
		{Namespace: "zeta", Path: "a"},
	}, lib.IDs())
}

func TestLibraryConcurrentReads(t *testing.T) {
	clip := testClip("simple/a", 5)
	lib, err := NewLibrary([]*Clip{clip})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := lib.Get(clip.ID)
				if err != nil || got != clip {
					t.Errorf("unexpected get result: %v %v", got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestParseClipID(t *testing.T) {
	cases := []struct {
		in      string
		want    ClipID
		wantErr bool
	}{
		{"magus:simple/air_gather_hands", ClipID{"magus", "simple/air_gather_hands"}, false},
		{" magus:a ", ClipID{"magus", "a"}, false},
		{"magus", ClipID{}, true},
		{":path", ClipID{}, true},
		{"magus:", ClipID{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseClipID(c.in)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.want.Namespace+":"+c.want.Path, got.String())
		})
	}
	assert.Equal(t, "<none>", ClipID{}.String())
}
