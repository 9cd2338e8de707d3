package http

import (
	"html/template"
	"net/http"

	"musicplayer/pkg/common"
	"musicplayer/pkg/folders"
	"musicplayer/pkg/settings"
	"musicplayer/pkg/votes"

	"github.com/gorilla/mux"
)

func NewHandler(
	server *settings.Server,
	library *folders.Library,
	counter *votes.Counter,
	home *template.Template,
) (http.Handler, error) {
	server.Clean()

	d := &data{
		server:  server,
		library: library,
		votes:   counter,
		home:    home,
	}

	r := mux.NewRouter()

	// NOTE: This fixes the issue where it would redirect if people did not put a
	// trailing slash in the end. https://www.gorillatoolkit.org/pkg/mux#Router.SkipClean
	r = r.SkipClean(true)

	monkey := func(fn handleFunc) http.Handler {
		return handle(fn, "", d)
	}

	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	r.Handle("/", monkey(homeHandler)).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.Handle("/songs", monkey(songsGetHandler)).Methods(http.MethodGet)
	api.Handle("/songs/detail", monkey(songDetailsGetHandler)).Methods(http.MethodGet)
	api.Handle("/set-folder", monkey(setFolderHandler)).Methods(http.MethodPost)
	api.Handle("/folders", monkey(foldersGetHandler)).Methods(http.MethodGet)

	api.Handle("/videos/random", monkey(videosGetHandler)).Methods(http.MethodGet)

	api.Handle("/votes/{songId}", monkey(votesGetHandler)).Methods(http.MethodGet)
	api.Handle("/like/{songId}", monkey(likeHandler)).Methods(http.MethodPost)
	api.Handle("/dislike/{songId}", monkey(dislikeHandler)).Methods(http.MethodPost)

	static := r.PathPrefix(server.StaticURL + "/").Subrouter()
	static.PathPrefix("/" + common.MusicPathPrefix + "/{key}/").
		Handler(musicFileHandler(library, server.StaticURL)).Methods(http.MethodGet, http.MethodHead)
	static.PathPrefix("/" + common.VideoPathPrefix + "/").
		Handler(videoFileHandler(library, server.StaticURL)).Methods(http.MethodGet, http.MethodHead)
	static.PathPrefix("/").
		Handler(staticFileHandler(library.Fs(), server.StaticURL, server.StaticDir)).Methods(http.MethodGet, http.MethodHead)

	return stripPrefix(server.BaseURL, corsHandler(r)), nil
}
