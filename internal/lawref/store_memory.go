package lawref

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	pkgstrings "codecheck/pkg/platform/strings"
)

// MemoryStore keeps law references in memory. It is the default backend for
// development and tests; production deployments point at PostgreSQL.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]LawDoc
}

// NewMemoryStore builds a store over the given documents.
func NewMemoryStore(docs []LawDoc) *MemoryStore {
	byCode := make(map[string]LawDoc, len(docs))
	for _, doc := range docs {
		byCode[doc.Code] = doc
	}
	return &MemoryStore{docs: byCode}
}

// NewMemoryStoreFromFile seeds a store from a JSON file holding a LawDoc
// array. A missing file yields an empty store rather than an error: law
// registration is optional metadata.
func NewMemoryStoreFromFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewMemoryStore(nil), nil
		}
		return nil, fmt.Errorf("read law references %s: %w", path, err)
	}
	var docs []LawDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parse law references %s: %w", path, err)
	}
	return NewMemoryStore(docs), nil
}

func (s *MemoryStore) FindByCodes(_ context.Context, codes []string) (map[string]LawDoc, []string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string]LawDoc)
	var missing []string
	for _, code := range pkgstrings.DedupeAndTrim(codes) {
		if doc, ok := s.docs[code]; ok {
			found[code] = doc
		} else {
			missing = append(missing, code)
		}
	}
	return found, missing, nil
}

// Register adds or replaces a document. Used by tests and seed tooling.
func (s *MemoryStore) Register(doc LawDoc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.Code] = doc
}
