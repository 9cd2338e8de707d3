package votes

import (
	"strings"
	"sync"

	"musicplayer/pkg/common"
)

// Votes are the like and dislike counts of a song.
type Votes struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// Counter keeps vote counts in process memory; they are lost on restart.
type Counter struct {
	mu    sync.RWMutex
	votes map[string]*Votes
}

func NewCounter() *Counter {
	return &Counter{
		votes: make(map[string]*Votes),
	}
}

func (c *Counter) Get(songId string) (Votes, error) {
	if err := checkSongId(songId); err != nil {
		return Votes{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if v, ok := c.votes[songId]; ok {
		return *v, nil
	}
	return Votes{}, nil
}

func (c *Counter) Like(songId string) (Votes, error) {
	return c.incr(songId, func(v *Votes) { v.Likes++ })
}

func (c *Counter) Dislike(songId string) (Votes, error) {
	return c.incr(songId, func(v *Votes) { v.Dislikes++ })
}

func (c *Counter) incr(songId string, fn func(v *Votes)) (Votes, error) {
	if err := checkSongId(songId); err != nil {
		return Votes{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.votes[songId]
	if !ok {
		v = &Votes{}
		c.votes[songId] = v
	}
	fn(v)
	return *v, nil
}

func checkSongId(songId string) error {
	if strings.TrimSpace(songId) == "" {
		return common.ErrInvalidSongId
	}
	return nil
}
