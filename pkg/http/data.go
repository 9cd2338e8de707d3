package http

import (
	"html/template"
	"net/http"

	"musicplayer/pkg/folders"
	"musicplayer/pkg/settings"
	"musicplayer/pkg/votes"

	"github.com/tomasen/realip"
	"k8s.io/klog/v2"
)

type handleFunc func(w http.ResponseWriter, r *http.Request, d *data) (int, error)

type data struct {
	server  *settings.Server
	library *folders.Library
	votes   *votes.Counter
	home    *template.Template
}

func handle(fn handleFunc, prefix string, d *data) http.Handler {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

		status, err := fn(w, r, d)

		if status >= 400 || err != nil {
			clientIP := realip.FromRequest(r)
			klog.Errorf("%s: %v %s %v", r.URL.Path, status, clientIP, err)
		}

		if status != 0 {
			renderError(w, status, err)
			return
		}
	})

	return stripPrefix(prefix, handler)
}
