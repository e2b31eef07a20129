package reference

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"visia/internal/errors"
)

// Store holds published reference table versions. Versions are registered
// once and never replaced; evaluation only ever reads, so a single RWMutex
// guarding registration is all the synchronization needed.
type Store struct {
	mu       sync.RWMutex
	versions map[string]*Table
	order    []string
}

// NewStore creates a store preloaded with the embedded default table.
func NewStore() *Store {
	s := &Store{versions: make(map[string]*Table)}
	// The builtin table is validated at parse time; registration cannot
	// collide in a fresh store.
	_ = s.Register(Builtin())
	return s
}

// Register publishes a table version. Re-publishing an existing version is
// rejected: corrections ship as a new version tag.
func (s *Store) Register(table *Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.versions[table.Version()]; exists {
		return errors.Config("reference table version already published: "+table.Version(), nil)
	}
	s.versions[table.Version()] = table
	s.order = append(s.order, table.Version())
	sort.Strings(s.order)
	return nil
}

// LoadDir registers every *.hcl table file found in dir. A missing directory
// is not an error; the embedded default remains available.
func (s *Store) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Config("failed to read reference table directory", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".hcl") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		src, err := os.ReadFile(path)
		if err != nil {
			return errors.Config("failed to read reference table file "+path, err)
		}
		table, err := ParseHCL(entry.Name(), src)
		if err != nil {
			return err
		}
		if table.Version() == DefaultVersion {
			// The embedded default is the canonical copy of its version.
			continue
		}
		if err := s.Register(table); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a table by version tag.
func (s *Store) Get(version string) (*Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, ok := s.versions[version]
	if !ok {
		return nil, errors.NotFound("reference table version", version)
	}
	return table, nil
}

// Latest returns the highest published version. Version tags sort
// lexicographically (YYYY.MM).
func (s *Store) Latest() *Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.versions[s.order[len(s.order)-1]]
}

// Resolve returns the table for a version tag, or the latest when the tag is
// empty.
func (s *Store) Resolve(version string) (*Table, error) {
	if version == "" {
		return s.Latest(), nil
	}
	return s.Get(version)
}

// Versions returns all published version tags in sorted order.
func (s *Store) Versions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
