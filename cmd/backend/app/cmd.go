package app

import (
	"k8s.io/klog/v2"
)

// Version is set at build time with -ldflags "-X musicplayer/cmd/backend/app.Version=...".
var Version = "dev"

// Execute executes the commands.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		klog.Fatal(err)
	}
}
