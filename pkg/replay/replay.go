// Package replay stores transform parameters recorded during a
// deterministic pass so a later pass can reapply exactly the same draw.
//
// A [Store] is owned by the caller and travels through the call data under
// the transform's save key (default "replay"). Each deterministic transform
// that fires records a snapshot of its generated parameters keyed by its
// stable instance ID, so a pipeline containing the same operation twice
// still records two independent parameter sets.
//
// A Store is scoped to one logical pass and is not safe for concurrent use.
package replay

import (
	"maps"
	"slices"
)

// Store maps transform instance IDs to recorded parameter snapshots.
type Store struct {
	records map[string]map[string]any
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{records: make(map[string]map[string]any)}
}

// Record stores a snapshot of params under the given instance ID,
// overwriting any previous recording for that ID. The params map is copied
// shallowly; callers record value-typed snapshots so no aliasing arises.
func (s *Store) Record(id string, params map[string]any) {
	s.records[id] = maps.Clone(params)
}

// Lookup returns the recorded parameters for an instance ID.
func (s *Store) Lookup(id string) (map[string]any, bool) {
	p, ok := s.records[id]
	if !ok {
		return nil, false
	}
	return maps.Clone(p), true
}

// Len returns the number of recorded transforms.
func (s *Store) Len() int { return len(s.records) }

// IDs returns the recorded instance IDs in sorted order.
func (s *Store) IDs() []string {
	ids := slices.Collect(maps.Keys(s.records))
	slices.Sort(ids)
	return ids
}
