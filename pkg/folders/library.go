package folders

import (
	"fmt"

	"musicplayer/pkg/common"

	"github.com/spf13/afero"
	"k8s.io/klog/v2"
)

// Library answers the song, video and folder queries of the HTTP layer.
type Library struct {
	fs        afero.Fs
	selection *Selection
	checker   *Checker
	staticURL string
	videoDir  string
}

type Options struct {
	StaticURL string
	VideoDir  string
}

// FolderList is the registry as reported to clients.
type FolderList struct {
	Current string   `json:"current"`
	Folders []Status `json:"folders"`
}

func NewLibrary(fs afero.Fs, selection *Selection, checker *Checker, opts Options) *Library {
	return &Library{
		fs:        fs,
		selection: selection,
		checker:   checker,
		staticURL: opts.StaticURL,
		videoDir:  opts.VideoDir,
	}
}

func (l *Library) Fs() afero.Fs {
	return l.fs
}

func (l *Library) Selection() *Selection {
	return l.selection
}

func (l *Library) VideoDir() string {
	return l.videoDir
}

// Songs lists the .mp3 file names of the active folder.
func (l *Library) Songs() ([]string, error) {
	return l.songsIn(l.selection.Folder())
}

// songsIn lists the songs of one folder. Callers resolve key and dir with a
// single Folder call so names and urls always refer to the same folder.
func (l *Library) songsIn(key, dir string) ([]string, error) {
	names, err := listByExtension(l.fs, dir, common.SongExtension)
	if err != nil {
		klog.Errorf("list songs of %s (%s) failed: %v", key, dir, err)
		return nil, fmt.Errorf("%w: %s: %v", common.ErrFolderUnavailable, key, err)
	}
	return names, nil
}

// SongDetails lists the songs of the active folder with ids and playable urls.
func (l *Library) SongDetails() ([]Song, error) {
	key, dir := l.selection.Folder()
	names, err := l.songsIn(key, dir)
	if err != nil {
		return nil, err
	}

	prefix := common.MusicPathPrefix + "/" + key
	songs := make([]Song, 0, len(names))
	for _, name := range names {
		songs = append(songs, newMediaFile(l.staticURL, prefix, name))
	}
	return songs, nil
}

// Videos lists the .mp4 files of the video directory. No video directory
// configured means no videos.
func (l *Library) Videos() ([]Video, error) {
	if l.videoDir == "" {
		return []Video{}, nil
	}

	names, err := listByExtension(l.fs, l.videoDir, common.VideoExtension)
	if err != nil {
		klog.Errorf("list videos of %s failed: %v", l.videoDir, err)
		return nil, fmt.Errorf("%w: videos: %v", common.ErrFolderUnavailable, err)
	}

	videos := make([]Video, 0, len(names))
	for _, name := range names {
		videos = append(videos, newMediaFile(l.staticURL, common.VideoPathPrefix, name))
	}
	return videos, nil
}

func (l *Library) SetFolder(key string) error {
	return l.selection.Set(key)
}

func (l *Library) Folders() FolderList {
	return FolderList{
		Current: l.selection.Current(),
		Folders: l.checker.Statuses(),
	}
}
