package form

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/uyouii/rangefield/common"
	"github.com/uyouii/rangefield/model"
)

// Store is an in-memory host form: numeric leaf values keyed by dotted path,
// plus the dirty and to-validate tags set by writers.
type Store struct {
	mu       sync.RWMutex
	values   map[string]float64
	dirty    map[string]bool
	validate map[string]bool
}

func NewStore(initial map[string]float64) *Store {
	s := &Store{
		values:   map[string]float64{},
		dirty:    map[string]bool{},
		validate: map[string]bool{},
	}
	for path, v := range initial {
		s.values[path] = v
	}
	return s
}

// Value returns a copy of the value at path, nil when absent.
func (s *Store) Value(path string) *float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[path]
	if !ok {
		return nil
	}
	return &v
}

// SetValue writes v at path, a nil v removes the value.
func (s *Store) SetValue(path string, v *float64, opts model.SetOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v == nil {
		delete(s.values, path)
	} else {
		s.values[path] = *v
	}
	if opts.ShouldDirty {
		s.dirty[path] = true
	}
	if opts.ShouldValidate {
		s.validate[path] = true
	}
}

func (s *Store) IsDirty(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty[path]
}

func (s *Store) DirtyPaths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.dirty)
}

// TakeValidation returns the paths tagged for validation and clears the tags.
func (s *Store) TakeValidation() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := sortedKeys(s.validate)
	s.validate = map[string]bool{}
	return res
}

func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = map[string]float64{}
	s.dirty = map[string]bool{}
	s.validate = map[string]bool{}
}

func (s *Store) Snapshot() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make(map[string]float64, len(s.values))
	for k, v := range s.values {
		res[k] = v
	}
	return res
}

// MarshalJSON nests dotted paths into objects, absent values are omitted.
func (s *Store) MarshalJSON() ([]byte, error) {
	root := map[string]any{}
	snapshot := s.Snapshot()
	for _, path := range sortedKeys(snapshot) {
		parts := strings.Split(path, ".")
		node := root
		for i, part := range parts[:len(parts)-1] {
			existing, found := node[part]
			if !found {
				child := map[string]any{}
				node[part] = child
				node = child
				continue
			}
			child, ok := existing.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: path %q nests under value %q",
					common.ErrorInvalidValue, path, strings.Join(parts[:i+1], "."))
			}
			node = child
		}
		leaf := parts[len(parts)-1]
		if _, found := node[leaf]; found {
			return nil, fmt.Errorf("%w: value %q collides with a nested path", common.ErrorInvalidValue, path)
		}
		node[leaf] = snapshot[path]
	}
	return json.Marshal(root)
}

func sortedKeys[V any](m map[string]V) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
