package persona

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	configFile   = "persona.toml"
	systemFile   = "system.md"
	knowledgeDir = "knowledge"
)

// LoadFS reads a persona from dir inside fsys. persona.toml is required;
// system.md replaces any inline system prompt; knowledge/*.md files are
// appended to the inline knowledge entries in lexical order.
func LoadFS(fsys fs.FS, dir string) (Persona, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, configFile))
	if err != nil {
		return Persona{}, err
	}

	var t PersonaTOML
	if err := toml.Unmarshal(data, &t); err != nil {
		return Persona{}, fmt.Errorf("parse %s: %w", configFile, err)
	}
	p := t.persona()

	system, err := readOptional(fsys, path.Join(dir, systemFile))
	if err != nil {
		return Persona{}, err
	}
	if system != "" {
		p.System = system
	}

	knowledge, err := readKnowledge(fsys, path.Join(dir, knowledgeDir))
	if err != nil {
		return Persona{}, err
	}
	p.Knowledge = append(p.Knowledge, knowledge...)

	return p, nil
}

func readOptional(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func readKnowledge(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".md" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var out []string
	for _, name := range names {
		text, err := readOptional(fsys, path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if text != "" {
			out = append(out, text)
		}
	}
	return out, nil
}
