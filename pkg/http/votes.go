package http

import (
	"net/http"

	"musicplayer/pkg/common"
	"musicplayer/pkg/votes"

	"github.com/gorilla/mux"
)

func votesHandler(fn func(c *votes.Counter, songId string) (votes.Votes, error)) handleFunc {
	return func(w http.ResponseWriter, r *http.Request, d *data) (int, error) {
		v, err := fn(d.votes, mux.Vars(r)["songId"])
		if err != nil {
			return common.ErrToStatus(err), err
		}
		return renderJSON(w, r, v)
	}
}

var (
	votesGetHandler = votesHandler((*votes.Counter).Get)
	likeHandler     = votesHandler((*votes.Counter).Like)
	dislikeHandler  = votesHandler((*votes.Counter).Dislike)
)
