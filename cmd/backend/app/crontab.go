package app

import (
	"fmt"
	"sync"

	"musicplayer/pkg/folders"

	"github.com/robfig/cron/v3"
	"k8s.io/klog/v2"
)

var checkMux sync.Mutex

// InitCrontabs schedules the periodic folder check and starts the scheduler.
// An empty schedule disables the check.
func InitCrontabs(checker *folders.Checker, schedule string) (*cron.Cron, error) {
	c := cron.New()

	if schedule != "" {
		_, err := c.AddFunc(schedule, func() {
			checkMux.Lock()
			defer checkMux.Unlock()

			checker.Check()
		})
		if err != nil {
			return nil, fmt.Errorf("add folder check with schedule %q: %w", schedule, err)
		}
		klog.Infof("Crontab task: CheckFolders (%s) added successfully.", schedule)
	}

	c.Start()
	return c, nil
}
