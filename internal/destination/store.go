package destination

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"
)

// Kind labels for the supported sink kinds. The store and the sink registry
// agree on these strings.
const (
	KindDiscord = "discord"
	KindGotify  = "gotify"
	KindWebhook = "webhook"
)

// Store holds the currently configured destinations, loaded from a YAML file.
// Reads during a reconcile tick see a consistent snapshot; Reload swaps the
// whole set atomically, so a tick never observes a half-applied edit.
type Store struct {
	mu     sync.RWMutex
	path   string
	byKind map[string][]Config
	logger *zap.Logger
}

// NewStore loads the destinations file at path. A missing file is an error:
// a notifier with no destination list is almost certainly misconfigured.
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	s := &Store{path: path, byKind: map[string][]Config{}, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStatic builds a store with a fixed destination set and no backing file.
// Used by tests and by callers that resolve configuration themselves.
func NewStatic(byKind map[string][]Config) *Store {
	s := &Store{byKind: map[string][]Config{}, logger: zap.NewNop()}
	for kind, configs := range byKind {
		s.byKind[kind] = append([]Config(nil), configs...)
	}
	return s
}

// Reload re-reads the backing file and atomically replaces the destination set.
func (s *Store) Reload() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read destinations file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse destinations file: %w", err)
	}

	byKind := map[string][]Config{
		KindDiscord: f.Discord,
		KindGotify:  f.Gotify,
		KindWebhook: f.Webhook,
	}

	s.mu.Lock()
	s.byKind = byKind
	s.mu.Unlock()

	s.logger.Info("destinations loaded",
		zap.String("path", s.path),
		zap.Int("discord", len(f.Discord)),
		zap.Int("gotify", len(f.Gotify)),
		zap.Int("webhook", len(f.Webhook)),
	)
	return nil
}

// ForKind returns a copy of the destinations configured for a sink kind.
func (s *Store) ForKind(kind string) []Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Config(nil), s.byKind[kind]...)
}

// Snapshot returns a copy of every configured destination by kind, suitable
// for iteration over the course of one tick.
func (s *Store) Snapshot() map[string][]Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]Config, len(s.byKind))
	for kind, configs := range s.byKind {
		out[kind] = append([]Config(nil), configs...)
	}
	return out
}

// Count returns the number of destinations per kind. Used by the stats handler.
func (s *Store) Count() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.byKind))
	for kind, configs := range s.byKind {
		out[kind] = len(configs)
	}
	return out
}

// Watch blocks until ctx is done, reloading the store whenever the backing
// file changes. Editors replace files via rename/create rather than in-place
// writes, so the watch is on the directory and events are matched by basename.
// A bad edit is logged and the previous destination set stays active.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil // static store, nothing to watch
	}

	dir := filepath.Dir(s.path)
	base := filepath.Base(s.path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	s.logger.Info("watching destinations file", zap.String("path", s.path))

	// Debounce: editors fire several events per save; collapse bursts into
	// one reload.
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pending:
			pending = nil
			if err := s.Reload(); err != nil {
				s.logger.Warn("destinations reload failed; keeping previous set", zap.Error(err))
			}
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Base(ev.Name), base) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pending = time.After(250 * time.Millisecond)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("destinations watch error", zap.Error(err))
		}
	}
}
