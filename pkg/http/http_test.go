package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"musicplayer/pkg/folders"
	"musicplayer/pkg/settings"
	"musicplayer/pkg/votes"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	handler http.Handler
	library *folders.Library
	fs      afero.Fs
}

func newTestEnv(t *testing.T, baseURL string) *testEnv {
	t.Helper()

	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/music/dian_gun/a.mp3":     "song-a",
		"/music/dian_gun/b.MP3":     "song-b",
		"/music/dian_gun/c.txt":     "text",
		"/music/da_si_ma/d.mp3":     "song-d",
		"/videos/clip.mp4":          "video",
		"/static/js/app.js":         "console.log(1)",
		"/templates/index.html":     `<html><body data-current="{{.Current}}">{{range .Folders}}<li>{{.Key}}</li>{{end}}</body></html>`,
		"/music/da_si_ma/notes.txt": "text",
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	require.NoError(t, fs.MkdirAll("/music/empty", 0755))

	server := settings.NewDefaultServer()
	server.BaseURL = baseURL
	server.StaticDir = "/static"
	server.VideoDir = "/videos"
	server.TemplatePath = "/templates/index.html"
	server.Folders = []settings.Folder{
		{Key: "dian_gun", Path: "/music/dian_gun"},
		{Key: "da_si_ma", Path: "/music/da_si_ma"},
		{Key: "empty", Path: "/music/empty"},
		{Key: "missing", Path: "/music/missing"},
	}
	server.Clean()
	require.NoError(t, server.Validate())

	registry, err := folders.NewRegistry(server.Folders)
	require.NoError(t, err)
	selection, err := folders.NewSelection(registry, server.DefaultFolder)
	require.NoError(t, err)
	checker := folders.NewChecker(fs, registry)
	checker.Check()
	library := folders.NewLibrary(fs, selection, checker, folders.Options{
		StaticURL: server.BaseURL + server.StaticURL,
		VideoDir:  server.VideoDir,
	})

	home, err := LoadHomeTemplate(fs, server.TemplatePath)
	require.NoError(t, err)

	handler, err := NewHandler(server, library, votes.NewCounter(), home)
	require.NoError(t, err)

	return &testEnv{handler: handler, library: library, fs: fs}
}

func (e *testEnv) do(t *testing.T, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) setFolder(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, http.MethodPost, "/api/set-folder", strings.NewReader(body))
}

func decodeStrings(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var res []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
}

func TestHomePage(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `data-current="dian_gun"`)
	assert.Contains(t, rec.Body.String(), "<li>da_si_ma</li>")
}

func TestLoadHomeTemplateMissing(t *testing.T) {
	_, err := LoadHomeTemplate(afero.NewMemMapFs(), "/templates/index.html")
	assert.Error(t, err)
}

func TestListSongsDefaultFolder(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/api/songs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.ElementsMatch(t, []string{"a.mp3", "b.MP3"}, decodeStrings(t, rec))
}

func TestListSongsEmptyFolder(t *testing.T) {
	env := newTestEnv(t, "")
	require.Equal(t, http.StatusOK, env.setFolder(t, `{"folder":"empty"}`).Code)

	rec := env.do(t, http.MethodGet, "/api/songs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestListSongsUnavailableFolder(t *testing.T) {
	env := newTestEnv(t, "")
	require.Equal(t, http.StatusOK, env.setFolder(t, `{"folder":"missing"}`).Code)

	rec := env.do(t, http.MethodGet, "/api/songs", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var res errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res.Error, "folder unavailable")
}

func TestSetFolder(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.setFolder(t, `{"folder":"da_si_ma"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","current":"da_si_ma"}`, rec.Body.String())
	assert.Equal(t, "da_si_ma", env.library.Selection().Current())

	rec = env.do(t, http.MethodGet, "/api/songs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"d.mp3"}, decodeStrings(t, rec))
}

func TestSetFolderRejected(t *testing.T) {
	cases := map[string]string{
		"unknown key":   `{"folder":"nope"}`,
		"missing field": `{"other":"dian_gun"}`,
		"empty key":     `{"folder":""}`,
		"null body":     `null`,
		"wrong type":    `{"folder":5}`,
		"malformed":     `{"folder":`,
		"empty body":    ``,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t, "")
			require.Equal(t, http.StatusOK, env.setFolder(t, `{"folder":"da_si_ma"}`).Code)

			rec := env.setFolder(t, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Invalid folder key"}`, rec.Body.String())
			assert.Equal(t, "da_si_ma", env.library.Selection().Current())
		})
	}
}

func TestSetFolderMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/api/set-folder", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestConcurrentSetFolder(t *testing.T) {
	env := newTestEnv(t, "")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			env.setFolder(t, `{"folder":"dian_gun"}`)
		}()
		go func() {
			defer wg.Done()
			env.setFolder(t, `{"folder":"da_si_ma"}`)
		}()
		go func() {
			defer wg.Done()
			rec := env.do(t, http.MethodGet, "/api/songs", nil)
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()

	assert.Contains(t, []string{"dian_gun", "da_si_ma"}, env.library.Selection().Current())
}

func TestFoldersEndpoint(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/api/folders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res folders.FolderList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "dian_gun", res.Current)
	require.Len(t, res.Folders, 4)
	assert.Equal(t, "dian_gun", res.Folders[0].Key)
	assert.True(t, res.Folders[0].Available)
	assert.False(t, res.Folders[3].Available)
}

func TestSongDetailsEndpoint(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/api/songs/detail", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var songs []folders.Song
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &songs))
	require.Len(t, songs, 2)
	assert.Equal(t, "/static/music/dian_gun/a.mp3", songs[0].URL)

	file := env.do(t, http.MethodGet, songs[0].URL, nil)
	require.Equal(t, http.StatusOK, file.Code)
	assert.Equal(t, "song-a", file.Body.String())
	assert.Equal(t, "audio/mpeg", file.Header().Get("Content-Type"))
}

func TestVideosEndpoint(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/api/videos/random", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var videos []folders.Video
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &videos))
	require.Len(t, videos, 1)
	assert.Equal(t, "clip.mp4", videos[0].Name)

	file := env.do(t, http.MethodGet, videos[0].URL, nil)
	require.Equal(t, http.StatusOK, file.Code)
	assert.Equal(t, "video", file.Body.String())
}

func TestVotesEndpoints(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/api/votes/abc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"likes":0,"dislikes":0}`, rec.Body.String())

	env.do(t, http.MethodPost, "/api/like/abc", nil)
	env.do(t, http.MethodPost, "/api/like/abc", nil)
	rec = env.do(t, http.MethodPost, "/api/dislike/abc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"likes":2,"dislikes":1}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/votes/abc", nil)
	assert.JSONEq(t, `{"likes":2,"dislikes":1}`, rec.Body.String())
}

func TestStaticFiles(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/static/js/app.js", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())

	rec = env.do(t, http.MethodGet, "/static/music/nope/a.mp3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/static/music/dian_gun/missing.mp3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORS(t *testing.T) {
	env := newTestEnv(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/songs", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/set-folder", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestBaseURL(t *testing.T) {
	env := newTestEnv(t, "/player/")

	rec := env.do(t, http.MethodGet, "/player/api/songs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.ElementsMatch(t, []string{"a.mp3", "b.MP3"}, decodeStrings(t, rec))

	rec = env.do(t, http.MethodPost, "/player/api/set-folder", bytes.NewBufferString(`{"folder":"empty"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/player/api/songs/detail", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestUnknownPath(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStaticLookAlikePrefix(t *testing.T) {
	env := newTestEnv(t, "")
	require.NoError(t, afero.WriteFile(env.fs, "/static/foo/js/app.js", []byte("x"), 0644))

	rec := env.do(t, http.MethodGet, "/staticfoo/js/app.js", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/static/foo/js/app.js", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
