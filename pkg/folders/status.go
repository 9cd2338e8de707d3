package folders

import (
	"sync"
	"time"

	"musicplayer/pkg/common"

	"github.com/spf13/afero"
	"k8s.io/klog/v2"
)

// Status is the last observed state of a registered folder.
type Status struct {
	Key       string    `json:"key"`
	Path      string    `json:"path"`
	Available bool      `json:"available"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Checker records whether each registered folder is a readable directory.
type Checker struct {
	fs       afero.Fs
	registry *Registry
	now      func() time.Time

	mu       sync.RWMutex
	statuses map[string]Status
}

func NewChecker(fs afero.Fs, registry *Registry) *Checker {
	return &Checker{
		fs:       fs,
		registry: registry,
		now:      time.Now,
		statuses: make(map[string]Status, registry.Len()),
	}
}

// Check stats every registered folder and stores the result.
func (c *Checker) Check() {
	statuses := make(map[string]Status, c.registry.Len())
	for _, key := range c.registry.Keys() {
		p, _ := c.registry.Path(key)
		st := Status{Key: key, Path: p, CheckedAt: c.now()}

		info, err := c.fs.Stat(p)
		switch {
		case err != nil:
			st.Error = err.Error()
		case !info.IsDir():
			st.Error = common.ErrIsNotDirectory.Error()
		default:
			st.Available = true
		}

		if !st.Available {
			klog.Warningf("folder %s (%s) unavailable: %s", key, p, st.Error)
		}
		statuses[key] = st
	}

	c.mu.Lock()
	c.statuses = statuses
	c.mu.Unlock()
}

// Statuses returns the last results in registry order. Folders that have
// not been checked yet are reported as unavailable.
func (c *Checker) Statuses() []Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res := make([]Status, 0, c.registry.Len())
	for _, key := range c.registry.Keys() {
		st, ok := c.statuses[key]
		if !ok {
			p, _ := c.registry.Path(key)
			st = Status{Key: key, Path: p}
		}
		res = append(res, st)
	}
	return res
}
