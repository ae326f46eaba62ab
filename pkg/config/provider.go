package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Provider is a read-only view of the current configuration, safe for
// concurrent use. Each SuperAdmins call returns the latest loaded snapshot;
// Reload and Watch replace the snapshot.
type Provider struct {
	mu      sync.RWMutex
	current *Config
}

// NewProvider creates a Provider serving the given configuration.
func NewProvider(cfg *Config) *Provider {
	return &Provider{current: cfg}
}

// SuperAdmins returns the current superadmin allowlist.
func (p *Provider) SuperAdmins() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current.SuperAdmins
}

// Reload reloads the configuration from file and environment.
func (p *Provider) Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.current = cfg
	p.mu.Unlock()
	return nil
}

// Watch reloads the configuration whenever the config file is written,
// until done is closed. Intended to be run in its own goroutine by
// long-lived processes; load errors are reported through errs when non-nil
// and otherwise dropped.
func (p *Provider) Watch(done <-chan struct{}, errs chan<- error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(FilePath()); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", FilePath(), err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if err := p.Reload(); err != nil && errs != nil {
					errs <- err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errs != nil {
				errs <- err
			}
		case <-done:
			return nil
		}
	}
}
