package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/rake/pkg/rake/internalerr"
	"github.com/cognicore/rake/pkg/rake/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu    sync.RWMutex
	lists map[string][]string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{lists: make(map[string][]string)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertStoplist replaces the list for lang.
func (s *Store) UpsertStoplist(ctx context.Context, lang string, tokens []string) error {
	key := store.LanguageKey(lang)
	if key == "" {
		return internalerr.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	list := dedupe(tokens)
	if len(list) == 0 {
		delete(s.lists, key)
		return nil
	}
	s.lists[key] = list
	return nil
}

// GetStoplist returns a copy of the list for lang.
func (s *Store) GetStoplist(ctx context.Context, lang string) ([]string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tokens, ok := s.lists[store.LanguageKey(lang)]
	if !ok {
		return nil, false, nil
	}
	return append([]string(nil), tokens...), true, nil
}

// DeleteStoplist removes the list for lang.
func (s *Store) DeleteStoplist(ctx context.Context, lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, store.LanguageKey(lang))
	return nil
}

// Languages returns the stored language codes.
func (s *Store) Languages(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.lists))
	for lang := range s.lists {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, tok := range in {
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
