package folders

import (
	"path"
	"path/filepath"
	"sort"
	"strings"

	"musicplayer/pkg/common"

	"github.com/google/uuid"
	"github.com/maruel/natural"
	"github.com/spf13/afero"
)

// MediaFile describes a playable file. Key is the file's logical location
// (for example "music/dian_gun/a.mp3") and URL the static path it is served
// from.
type MediaFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Key  string `json:"key"`
}

type Song = MediaFile

type Video = MediaFile

// HasExtension reports whether name ends in ext, ignoring case.
func HasExtension(name, ext string) bool {
	return strings.ToLower(filepath.Ext(name)) == ext
}

// listByExtension returns the names of regular entries of dir whose
// extension matches ext, in natural order.
func listByExtension(fs afero.Fs, dir, ext string) ([]string, error) {
	info, err := fs.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, common.ErrIsNotDirectory
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if HasExtension(e.Name(), ext) {
			names = append(names, e.Name())
		}
	}

	sort.Sort(natural.StringSlice(names))
	return names, nil
}

func newMediaFile(staticURL, prefix, name string) MediaFile {
	key := path.Join(prefix, name)
	return MediaFile{
		ID:   uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String(),
		Name: name,
		URL:  staticURL + "/" + common.EscapePath(key),
		Key:  key,
	}
}
