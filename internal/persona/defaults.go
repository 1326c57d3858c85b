package persona

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDefaults writes every bundled persona under baseDir/personas if its
// directory does not already exist. Existing personas are left untouched.
func EnsureDefaults(baseDir string) error {
	entries, err := bundled.ReadDir("bundled")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := ensurePersona(baseDir, entry.Name()); err != nil {
			return err
		}
	}
	return nil
}

func ensurePersona(baseDir string, name string) error {
	personaDir := filepath.Join(baseDir, "personas", name)

	if _, err := os.Stat(personaDir); err == nil {
		return nil
	}

	root := "bundled/" + name
	return fs.WalkDir(bundled, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		target := filepath.Join(personaDir, filepath.FromSlash(rel))

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		data, err := bundled.ReadFile(p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
