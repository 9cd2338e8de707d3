package common

const (
	SongExtension  = ".mp3"
	VideoExtension = ".mp4"

	MusicPathPrefix = "music"
	VideoPathPrefix = "videos"
)

const (
	StatusOK = "ok"
)

const (
	ContentTypeJSON = "application/json; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
)
