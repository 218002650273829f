package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed magus.yaml animations scripts
var PrefabsFS embed.FS

// diskRoot is where edited prefabs are picked up from before the embedded
// copies; relative to the working directory.
var diskRoot = "prefabs"

// Load reads a prefab file, preferring the on-disk copy.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript reads a tengo script from scripts/.
func LoadScript(name string) ([]byte, error) {
	return Load(cleanScriptPath(name))
}

// AnimationsFS returns the animations tree, rooted so that paths look like
// <namespace>/<variant>/<clip>.yaml. The on-disk tree wins when present.
func AnimationsFS() fs.FS {
	dir := diskPrefabPath("animations")
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(PrefabsFS, "animations")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return sub
}

// AnimationsDir is the on-disk animations directory watched for reloads.
func AnimationsDir() string {
	return diskPrefabPath("animations")
}

// ScriptsDir is the on-disk scripts directory watched for reloads.
func ScriptsDir() string {
	return diskPrefabPath("scripts")
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := cleanPrefabPath(path)
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	return "scripts/" + s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(diskRoot, filepath.FromSlash(clean))
}
