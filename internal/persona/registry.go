package persona

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Registry finds personas stored under a data directory.
type Registry struct {
	PersonasDir string
}

func NewRegistry(dataDir string) *Registry {
	return &Registry{
		PersonasDir: filepath.Join(dataDir, "personas"),
	}
}

// Summary describes a persona on disk without validating it.
type Summary struct {
	Name        string
	DisplayName string
	HasSystem   bool
	Knowledge   int
	Builtin     bool
}

// List returns the personas on disk, plus the built-in persona when it has
// not been written out.
func (r *Registry) List() ([]Summary, error) {
	entries, err := os.ReadDir(r.PersonasDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	var out []Summary
	haveDefault := false
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		dir := filepath.Join(r.PersonasDir, name)
		if !fileExists(filepath.Join(dir, configFile)) {
			continue
		}

		s := Summary{
			Name:        name,
			DisplayName: name,
			HasSystem:   fileExists(filepath.Join(dir, systemFile)),
		}
		if p, err := LoadFS(os.DirFS(dir), "."); err == nil {
			if p.Name != "" {
				s.DisplayName = p.Name
			}
			s.Knowledge = len(p.Knowledge)
		}

		if name == DefaultName {
			haveDefault = true
		}
		out = append(out, s)
	}

	if !haveDefault {
		if p, err := Builtin(); err == nil {
			out = append(out, Summary{
				Name:        DefaultName,
				DisplayName: p.Name,
				HasSystem:   p.System != "",
				Knowledge:   len(p.Knowledge),
				Builtin:     true,
			})
		}
	}

	return out, nil
}

// Load reads the named persona from disk. The default persona falls back to
// the built-in copy when it has not been written out.
func (r *Registry) Load(name string) (Persona, error) {
	dir := filepath.Join(r.PersonasDir, name)

	p, err := LoadFS(os.DirFS(dir), ".")
	if err == nil {
		return p, nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return Persona{}, &ConfigError{Name: name, Err: err}
	}

	if name == DefaultName {
		return Builtin()
	}

	available, _ := r.List()
	var names []string
	for _, a := range available {
		names = append(names, a.Name)
	}
	return Persona{}, &NotFoundError{Name: name, Available: names}
}

func (r *Registry) Exists(name string) bool {
	return name == DefaultName || fileExists(filepath.Join(r.PersonasDir, name, configFile))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	msg := "persona not found: " + e.Name
	if len(e.Available) > 0 {
		msg += "; available: " + strings.Join(e.Available, ", ")
	}
	return msg
}

type ConfigError struct {
	Name string
	Err  error
}

func (e *ConfigError) Error() string {
	return "invalid config for persona " + e.Name + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
