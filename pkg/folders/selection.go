package folders

import (
	"fmt"
	"sync"

	"musicplayer/pkg/common"

	"k8s.io/klog/v2"
)

// Selection holds the key of the active folder. Reads and writes are
// serialized, so a reader always sees a complete key.
type Selection struct {
	registry *Registry

	mu      sync.RWMutex
	current string
}

func NewSelection(registry *Registry, defaultKey string) (*Selection, error) {
	if !registry.Has(defaultKey) {
		return nil, fmt.Errorf("%w: default %q", common.ErrInvalidFolderKey, defaultKey)
	}
	return &Selection{
		registry: registry,
		current:  defaultKey,
	}, nil
}

func (s *Selection) Registry() *Registry {
	return s.registry
}

func (s *Selection) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Folder returns the active key together with its directory path.
func (s *Selection) Folder() (string, string) {
	s.mu.RLock()
	key := s.current
	s.mu.RUnlock()

	p, _ := s.registry.Path(key)
	return key, p
}

// Set makes key the active folder. Unknown keys leave the selection as it was.
func (s *Selection) Set(key string) error {
	if !s.registry.Has(key) {
		return common.ErrInvalidFolderKey
	}

	s.mu.Lock()
	prev := s.current
	s.current = key
	s.mu.Unlock()

	klog.Infof("active folder changed: %s -> %s", prev, key)
	return nil
}
