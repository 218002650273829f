package prefabs

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/milk9111/magus/component"
	"gopkg.in/yaml.v3"
)

// ClipSpec is the YAML form of one animation clip.
type ClipSpec struct {
	// ID overrides the id derived from the file path ("namespace:path").
	ID        string         `yaml:"id"`
	EndTick   *int           `yaml:"end_tick"`
	Keyframes []KeyframeSpec `yaml:"keyframes"`
}

type KeyframeSpec struct {
	Tick  int     `yaml:"tick"`
	Bone  string  `yaml:"bone"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
	Roll  float64 `yaml:"roll"`
}

// ParseClip decodes a clip file. The id is taken from rel, the path below the
// animations root: magus/simple/wave.yaml becomes magus:simple/wave.
func ParseClip(rel string, data []byte) (*component.Clip, error) {
	var spec ClipSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", rel, err)
	}

	id, err := clipIDFromPath(rel)
	if err != nil {
		return nil, err
	}
	if spec.ID != "" {
		if id, err = component.ParseClipID(spec.ID); err != nil {
			return nil, fmt.Errorf("prefabs: %s: %w", rel, err)
		}
	}
	// an empty document is what a reload sees mid-save
	if spec.EndTick == nil {
		return nil, fmt.Errorf("prefabs: %s: end_tick is required", rel)
	}
	endTick := *spec.EndTick
	if endTick < 0 {
		return nil, fmt.Errorf("prefabs: %s: end_tick must be >= 0, got %d", rel, endTick)
	}

	keys := make([]component.Keyframe, 0, len(spec.Keyframes))
	for i, k := range spec.Keyframes {
		if k.Tick < 0 || k.Tick > endTick {
			return nil, fmt.Errorf("prefabs: %s: keyframe %d tick %d outside [0,%d]", rel, i, k.Tick, endTick)
		}
		if k.Bone == "" {
			return nil, fmt.Errorf("prefabs: %s: keyframe %d has no bone", rel, i)
		}
		keys = append(keys, component.Keyframe{
			Tick: k.Tick, Bone: k.Bone,
			X: k.X, Y: k.Y, Z: k.Z,
			Pitch: k.Pitch, Yaw: k.Yaw, Roll: k.Roll,
		})
	}
	sort.SliceStable(keys, func(i, j int) bool { return keys[i].Tick < keys[j].Tick })

	return &component.Clip{ID: id, EndTick: endTick, Keyframes: keys}, nil
}

func clipIDFromPath(rel string) (component.ClipID, error) {
	p := strings.TrimSuffix(path.Clean(rel), path.Ext(rel))
	ns, rest, ok := strings.Cut(p, "/")
	if !ok || ns == "" || rest == "" {
		return component.ClipID{}, fmt.Errorf("prefabs: %s: clip files live under <namespace>/", rel)
	}
	return component.ClipID{Namespace: ns, Path: rest}, nil
}

// LoadClips parses every .yaml/.yml file in fsys, in lexical path order.
func LoadClips(fsys fs.FS) ([]*component.Clip, error) {
	var clips []*component.Clip
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSpecFile(p) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("prefabs: load %s: %w", p, err)
		}
		clip, err := ParseClip(p, data)
		if err != nil {
			return err
		}
		clips = append(clips, clip)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return clips, nil
}

// LoadLibrary loads every clip in fsys into a new library.
func LoadLibrary(fsys fs.FS) (*component.Library, error) {
	clips, err := LoadClips(fsys)
	if err != nil {
		return nil, err
	}
	lib, err := component.NewLibrary(clips)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %w", err)
	}
	return lib, nil
}
