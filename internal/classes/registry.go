// Package classes maintains the append-only class registry shared by
// dataset preparation and detection, and builds class remaps when
// datasets with different class lists are merged.
package classes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Registry is an append-only mapping from class name to a dense integer
// id starting at 0. Ids are never reused or reordered; the name list in
// id order is what training consumes. Safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	dir   string
	ids   map[string]int
	names []string
}

const (
	registryFile = "registry.json"
	namesFile    = "classes.txt"
)

// OpenRegistry loads the registry stored in dir, creating an empty one
// if none exists. A registry file that cannot be parsed is moved aside
// to registry.json.corrupt and the registry starts empty rather than
// failing the whole run.
func OpenRegistry(dir string) (*Registry, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	r := &Registry{dir: dir, ids: map[string]int{}}

	path := filepath.Join(dir, registryFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &r.ids); err != nil {
		fmt.Printf("class registry %s is corrupt (%v), starting a fresh one\n", path, err)
		if err := os.Rename(path, path+".corrupt"); err != nil {
			return nil, fmt.Errorf("set aside corrupt registry: %w", err)
		}
		r.ids = map[string]int{}
		return r, nil
	}

	r.names = make([]string, len(r.ids))
	for name, id := range r.ids {
		if id < 0 || id >= len(r.names) || r.names[id] != "" {
			return nil, fmt.Errorf("class registry %s: ids are not dense from 0", path)
		}
		r.names[id] = name
	}
	return r, nil
}

// GetOrCreate returns the id of name, assigning the next free id the
// first time the name is seen. Every assignment is persisted before it
// is returned, so a crash can lose an id but never hand out two.
func (r *Registry) GetOrCreate(name string) (int, error) {
	name = Canonical(name)
	if name == "" {
		return 0, fmt.Errorf("empty class name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.ids[name]; ok {
		return id, nil
	}

	id := len(r.names)
	r.ids[name] = id
	r.names = append(r.names, name)
	if err := r.save(); err != nil {
		delete(r.ids, name)
		r.names = r.names[:id]
		return 0, err
	}
	return id, nil
}

// Lookup returns the id of name, or false if it was never registered.
func (r *Registry) Lookup(name string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.ids[Canonical(name)]
	return id, ok
}

// Names returns the class names in id order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.names)
}

// save writes registry.json and the derived classes.txt. classes.txt is
// one name per line in id order; trainers read the line number as the id.
func (r *Registry) save() error {
	pairs := make([]string, 0, len(r.ids))
	for name := range r.ids {
		pairs = append(pairs, name)
	}
	sort.Slice(pairs, func(i, j int) bool { return r.ids[pairs[i]] < r.ids[pairs[j]] })

	data, err := json.MarshalIndent(r.ids, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(r.dir, registryFile), data, 0644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(r.dir, namesFile), []byte(strings.Join(pairs, "\n")+"\n"), 0644)
}

// Canonical normalizes a class name for matching: surrounding whitespace
// stripped and case folded.
func Canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
