package http

import (
	"bytes"
	"html/template"
	"net/http"

	"musicplayer/pkg/common"
	"musicplayer/pkg/folders"

	"github.com/spf13/afero"
)

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", common.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"OK"}`))
}

// LoadHomeTemplate parses the landing page template.
func LoadHomeTemplate(fs afero.Fs, path string) (*template.Template, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return template.New("index").Parse(string(content))
}

type homeData struct {
	BaseURL   string
	StaticURL string
	Current   string
	Folders   []folders.Status
}

func homeHandler(w http.ResponseWriter, _ *http.Request, d *data) (int, error) {
	list := d.library.Folders()

	var buf bytes.Buffer
	err := d.home.Execute(&buf, homeData{
		BaseURL:   d.server.BaseURL,
		StaticURL: d.server.BaseURL + d.server.StaticURL,
		Current:   list.Current,
		Folders:   list.Folders,
	})
	if err != nil {
		return http.StatusInternalServerError, err
	}

	w.Header().Set("Content-Type", common.ContentTypeHTML)
	if _, err := buf.WriteTo(w); err != nil {
		return http.StatusInternalServerError, err
	}
	return 0, nil
}
