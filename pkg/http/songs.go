package http

import (
	"net/http"

	"musicplayer/pkg/common"
)

func songsGetHandler(w http.ResponseWriter, r *http.Request, d *data) (int, error) {
	songs, err := d.library.Songs()
	if err != nil {
		return common.ErrToStatus(err), err
	}
	return renderJSON(w, r, songs)
}

func songDetailsGetHandler(w http.ResponseWriter, r *http.Request, d *data) (int, error) {
	songs, err := d.library.SongDetails()
	if err != nil {
		return common.ErrToStatus(err), err
	}
	return renderJSON(w, r, songs)
}

func videosGetHandler(w http.ResponseWriter, r *http.Request, d *data) (int, error) {
	videos, err := d.library.Videos()
	if err != nil {
		return common.ErrToStatus(err), err
	}
	return renderJSON(w, r, videos)
}
