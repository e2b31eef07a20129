// Package results persists finished evaluations. Records are write-once:
// a stored result is never updated in place, and reads verify the file
// content against the hash recorded at write time.
package results

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"visia/core/project"
	"visia/core/score"
	"visia/internal/errors"
)

// Record pairs an evaluation result with the input that produced it, so an
// auditor can re-run the evaluation and compare hashes.
type Record struct {
	Result   *score.Result  `json:"resultado"`
	Input    *project.Input `json:"entrada"`
	StoredAt time.Time      `json:"armazenado_em"`
}

// Metadata is the index entry kept per stored record.
type Metadata struct {
	Hash           string               `json:"hash"`
	Project        string               `json:"projeto"`
	Methodology    project.Methodology  `json:"metodologia"`
	Classification score.Classification `json:"classificacao"`
	StoredAt       time.Time            `json:"armazenado_em"`
	FileHash       string               `json:"hash_arquivo"`
	FilePath       string               `json:"arquivo"`
	Size           int64                `json:"tamanho"`
}

// Store is a write-once file store keyed by the result verification hash.
type Store struct {
	mu      sync.RWMutex
	baseDir string
	index   map[string]*Metadata
}

// NewStore opens (or creates) a result store rooted at baseDir.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, errors.Storage("failed to create results directory", err)
	}

	s := &Store{
		baseDir: baseDir,
		index:   make(map[string]*Metadata),
	}
	if err := s.loadIndex(); err != nil {
		return nil, err
	}
	return s, nil
}

// Put stores an evaluated record. Storing the same result hash twice is a
// no-op: evaluation is deterministic, so an identical hash means identical
// content. A hash collision with different content is rejected.
func (s *Store) Put(ctx context.Context, rec *Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.Result == nil || rec.Result.Hash == "" {
		return errors.Storage("record has no result hash", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return errors.Storage("failed to serialize record", err)
	}
	fileHash := contentHash(data)

	if existing, ok := s.index[rec.Result.Hash]; ok {
		if existing.FileHash == fileHash {
			return nil
		}
		return errors.Storage("result already stored with different content: "+rec.Result.Hash, nil).
			WithContext("hash", rec.Result.Hash)
	}

	filename := fmt.Sprintf("%s.json", rec.Result.Hash[:16])
	path := filepath.Join(s.baseDir, filename)
	if _, err := os.Stat(path); err == nil {
		return errors.Storage("result file already exists: "+filename, nil)
	}
	if err := os.WriteFile(path, data, 0o444); err != nil {
		return errors.Storage("failed to write result file", err)
	}

	s.index[rec.Result.Hash] = &Metadata{
		Hash:           rec.Result.Hash,
		Project:        rec.Result.Project,
		Methodology:    rec.Result.Methodology,
		Classification: rec.Result.Classification,
		StoredAt:       rec.StoredAt,
		FileHash:       fileHash,
		FilePath:       path,
		Size:           int64(len(data)),
	}
	return s.saveIndex()
}

// Get loads a record by result hash, verifying file integrity. A unique hash
// prefix is accepted, so listings can print shortened hashes.
func (s *Store) Get(ctx context.Context, hash string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	meta, ok := s.index[hash]
	if !ok {
		for h, m := range s.index {
			if strings.HasPrefix(h, hash) {
				if ok {
					meta, ok = nil, false
					break
				}
				meta, ok = m, true
			}
		}
	}
	s.mu.RUnlock()
	if !ok || hash == "" {
		return nil, errors.NotFound("result", hash)
	}

	data, err := os.ReadFile(meta.FilePath)
	if err != nil {
		return nil, errors.Storage("failed to read result file", err)
	}
	if contentHash(data) != meta.FileHash {
		return nil, errors.Storage("result file content does not match stored hash", nil).
			WithContext("hash", hash)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Storage("failed to decode result file", err)
	}
	return &rec, nil
}

// List returns index entries sorted by storage time, newest first; ties break
// on the hash so the order is deterministic.
func (s *Store) List() []*Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Metadata, 0, len(s.index))
	for _, meta := range s.index {
		out = append(out, meta)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StoredAt.Equal(out[j].StoredAt) {
			return out[i].StoredAt.After(out[j].StoredAt)
		}
		return out[i].Hash < out[j].Hash
	})
	return out
}

// VerifyIntegrity re-hashes every stored file and reports the hashes whose
// content no longer matches the index.
func (s *Store) VerifyIntegrity() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var corrupted []string
	for hash, meta := range s.index {
		data, err := os.ReadFile(meta.FilePath)
		if err != nil {
			corrupted = append(corrupted, hash+": file missing")
			continue
		}
		if contentHash(data) != meta.FileHash {
			corrupted = append(corrupted, hash+": content mismatch")
		}
	}
	sort.Strings(corrupted)
	return corrupted
}

func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

const indexFilename = "index.json"

type indexFile struct {
	Records   map[string]*Metadata `json:"records"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func (s *Store) loadIndex() error {
	data, err := os.ReadFile(filepath.Join(s.baseDir, indexFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Storage("failed to read results index", err)
	}

	var idx indexFile
	if err := json.Unmarshal(data, &idx); err != nil {
		return errors.Storage("failed to decode results index", err)
	}
	if idx.Records != nil {
		s.index = idx.Records
	}
	return nil
}

func (s *Store) saveIndex() error {
	path := filepath.Join(s.baseDir, indexFilename)
	data, err := json.MarshalIndent(indexFile{
		Records:   s.index,
		UpdatedAt: time.Now().UTC(),
	}, "", "  ")
	if err != nil {
		return errors.Storage("failed to serialize results index", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return errors.Storage("failed to write results index", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return errors.Storage("failed to replace results index", err)
	}
	return nil
}
