package store

import (
	"context"
	"strings"
)

// Store persists stopword lists keyed by language code
type Store interface {
	Close() error

	// UpsertStoplist replaces the list stored for lang. Order is kept.
	UpsertStoplist(ctx context.Context, lang string, tokens []string) error
	// GetStoplist returns the list for lang, and false if none is stored.
	GetStoplist(ctx context.Context, lang string) ([]string, bool, error)
	// DeleteStoplist removes the list for lang.
	DeleteStoplist(ctx context.Context, lang string) error
	// Languages lists the stored language codes in sorted order.
	Languages(ctx context.Context) ([]string, error)
}

// LanguageKey normalizes a language code for storage
func LanguageKey(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
