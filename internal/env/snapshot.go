// Package env reads process environment state once and exposes it as an
// immutable snapshot, so everything downstream can stay a pure function of
// its input.
package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// Snapshot is a read-only view of named string variables taken at one instant.
type Snapshot struct {
	values map[string]string
}

// New returns a snapshot holding a copy of values.
func New(values map[string]string) Snapshot {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Snapshot{values: copied}
}

// FromEnviron parses KEY=VALUE pairs in the format returned by os.Environ.
// Entries without '=' are ignored; later duplicates win.
func FromEnviron(environ []string) Snapshot {
	values := make(map[string]string, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		values[name] = value
	}
	return Snapshot{values: values}
}

// FromOS captures the current process environment.
func FromOS() Snapshot {
	return FromEnviron(os.Environ())
}

// Load captures the process environment layered over the variables in
// envFile. A missing envFile is not an error; real environment values
// always take precedence over file values.
func Load(envFile string) (Snapshot, error) {
	base := Snapshot{}

	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Snapshot{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
		base = New(fileValues)
	}

	return base.Merge(FromOS()), nil
}

// Lookup returns the raw value of name and whether it is present at all.
func (s Snapshot) Lookup(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Get returns the value of name with surrounding whitespace removed.
func (s Snapshot) Get(name string) string {
	return strings.TrimSpace(s.values[name])
}

// IsSet reports whether name holds a non-empty value after trimming.
func (s Snapshot) IsSet(name string) bool {
	return s.Get(name) != ""
}

// AllSet reports whether every name is set. It is false for no names.
func (s Snapshot) AllSet(names ...string) bool {
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		if !s.IsSet(name) {
			return false
		}
	}
	return true
}

// Merge returns a new snapshot with over's values replacing s's.
func (s Snapshot) Merge(over Snapshot) Snapshot {
	merged := make(map[string]string, len(s.values)+len(over.values))
	for k, v := range s.values {
		merged[k] = v
	}
	for k, v := range over.values {
		merged[k] = v
	}
	return Snapshot{values: merged}
}

// Names returns the variable names in lexical order.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s.values))
	for k := range s.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of variables in the snapshot.
func (s Snapshot) Len() int {
	return len(s.values)
}
