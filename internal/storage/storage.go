package storage

import (
	"fmt"
	"strings"
	"time"
)

// Package storage tracks which feed entries the watcher has already
// announced, so a restart does not replay the whole feed to publishers.
// The request pipeline never touches it.

// Store tracks announced entry URLs.
type Store interface {
	Close() error
	SeenEntry(url string) (bool, error)
	MarkEntry(url string) error
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	EntryTTL        time.Duration
	CleanupInterval time.Duration
}

const (
	defaultEntryTTL        = 30 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.EntryTTL <= 0 {
		opts.EntryTTL = defaultEntryTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

// noopStore treats every entry as new; useful for dry runs.
type noopStore struct{}

func (noopStore) Close() error                   { return nil }
func (noopStore) SeenEntry(string) (bool, error) { return false, nil }
func (noopStore) MarkEntry(string) error         { return nil }
