package http

import (
	"net/http"

	"musicplayer/pkg/common"
	"musicplayer/pkg/folders"

	"github.com/gorilla/mux"
	"github.com/spf13/afero"
)

// musicFileHandler serves the files of a registered folder under
// <static>/music/{key}/. Any registered folder can be served, not only the
// active one.
func musicFileHandler(library *folders.Library, staticURL string) http.Handler {
	httpFs := afero.NewHttpFs(library.Fs())
	registry := library.Selection().Registry()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := mux.Vars(r)["key"]
		dir, ok := registry.Path(key)
		if !ok {
			http.NotFound(w, r)
			return
		}

		prefix := staticURL + "/" + common.MusicPathPrefix + "/" + key
		http.StripPrefix(prefix, withMediaType(http.FileServer(httpFs.Dir(dir)))).ServeHTTP(w, r)
	})
}

func videoFileHandler(library *folders.Library, staticURL string) http.Handler {
	if library.VideoDir() == "" {
		return http.NotFoundHandler()
	}

	httpFs := afero.NewHttpFs(library.Fs())
	prefix := staticURL + "/" + common.VideoPathPrefix
	return http.StripPrefix(prefix, withMediaType(http.FileServer(httpFs.Dir(library.VideoDir()))))
}

func staticFileHandler(fs afero.Fs, staticURL, staticDir string) http.Handler {
	httpFs := afero.NewHttpFs(fs)
	return http.StripPrefix(staticURL, withMediaType(http.FileServer(httpFs.Dir(staticDir))))
}

// withMediaType sets the Content-Type of known media files, which the
// system mime tables often lack, before the file server sniffs one.
func withMediaType(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := common.MimeTypeByExtension(r.URL.Path); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		h.ServeHTTP(w, r)
	})
}
