package folders

import (
	"fmt"

	"musicplayer/pkg/settings"
)

// Registry maps folder keys to directory paths. It is built once at start
// and never modified afterwards.
type Registry struct {
	keys  []string
	paths map[string]string
}

func NewRegistry(folders []settings.Folder) (*Registry, error) {
	if len(folders) == 0 {
		return nil, settings.ErrNoFolders
	}

	r := &Registry{
		keys:  make([]string, 0, len(folders)),
		paths: make(map[string]string, len(folders)),
	}
	for _, f := range folders {
		if f.Key == "" {
			return nil, fmt.Errorf("%w: path %q", settings.ErrEmptyFolderKey, f.Path)
		}
		if _, ok := r.paths[f.Key]; ok {
			return nil, fmt.Errorf("%w: %s", settings.ErrDuplicateFolderKey, f.Key)
		}
		r.keys = append(r.keys, f.Key)
		r.paths[f.Key] = f.Path
	}
	return r, nil
}

func (r *Registry) Has(key string) bool {
	_, ok := r.paths[key]
	return ok
}

func (r *Registry) Path(key string) (string, bool) {
	p, ok := r.paths[key]
	return p, ok
}

// Keys returns the registered keys in configuration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

func (r *Registry) Len() int {
	return len(r.keys)
}
