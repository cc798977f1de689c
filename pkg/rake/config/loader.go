package config

import (
	"context"
	"fmt"

	"github.com/cognicore/rake/pkg/rake/internalerr"
	"github.com/cognicore/rake/pkg/rake/stoplist"
	"github.com/cognicore/rake/pkg/rake/store"
)

// Stopword sources reported by Loader
const (
	SourceFile    = "file"
	SourceStore   = "store"
	SourceBuiltin = "builtin"
)

// Loader resolves the stopword set for an extraction run
type Loader struct {
	Language      string
	StopwordsPath string
	Store         store.Store // optional
}

// Components holds the resolved stopwords and where they came from
type Components struct {
	Stopwords []string
	Language  stoplist.Language
	Source    string
	// Key identifies the list within its source: the file path, the
	// matching store key, or the built-in language code.
	Key string
}

// Load picks, in order: the override file, the store's list for the
// language, the built-in list for the language. An override file with no
// words yields an empty, non-nil stopword list.
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	comp := &Components{Language: stoplist.Resolve(l.Language)}

	if l.StopwordsPath != "" {
		words, err := LoadStopwords(l.StopwordsPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		if words == nil {
			words = []string{}
		}
		comp.Stopwords = words
		comp.Source = SourceFile
		comp.Key = l.StopwordsPath
		return comp, nil
	}

	if l.Store != nil {
		// custom languages are stored under their own code, built-in ones
		// may also be stored under the canonical code
		keys := []string{store.LanguageKey(l.Language)}
		if keys[0] != string(comp.Language) {
			keys = append(keys, string(comp.Language))
		}
		for _, key := range keys {
			words, ok, err := l.Store.GetStoplist(ctx, key)
			if err != nil {
				return nil, fmt.Errorf("load stoplist %q: %w: %v", key, internalerr.ErrStoreUnavailable, err)
			}
			if ok {
				comp.Stopwords = words
				comp.Source = SourceStore
				comp.Key = key
				return comp, nil
			}
		}
	}

	comp.Stopwords = comp.Language.Words()
	comp.Source = SourceBuiltin
	comp.Key = string(comp.Language)
	return comp, nil
}
