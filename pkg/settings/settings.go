package settings

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	ErrNoFolders          = errors.New("no folders configured")
	ErrEmptyFolderKey     = errors.New("folder key is empty")
	ErrDuplicateFolderKey = errors.New("duplicate folder key")
	ErrUnknownDefault     = errors.New("default folder is not a configured folder key")
)

// Folder is one entry of the folder registry as read from configuration.
type Folder struct {
	Key  string `json:"key" mapstructure:"key"`
	Path string `json:"path" mapstructure:"path"`
}

// Server specific settings.
type Server struct {
	Address       string   `json:"address"`
	Port          string   `json:"port"`
	BaseURL       string   `json:"baseURL"`
	Log           string   `json:"log"`
	StaticDir     string   `json:"staticDir"`
	StaticURL     string   `json:"staticURL"`
	TemplatePath  string   `json:"templatePath"`
	VideoDir      string   `json:"videoDir"`
	DefaultFolder string   `json:"defaultFolder"`
	CheckSchedule string   `json:"checkSchedule"`
	Folders       []Folder `json:"folders"`
}

// DefaultFolders are the folders compiled into the service.
func DefaultFolders() []Folder {
	return []Folder{
		{Key: "dian_gun", Path: "./music/溜冰场"},
		{Key: "da_si_ma", Path: "./music/大司马"},
		{Key: "ding_zhen", Path: "./music/丁真"},
		{Key: "dxl", Path: "./music/东洋雪莲"},
		{Key: "ha_ji_mi", Path: "./music/哈基米"},
	}
}

func NewDefaultServer() *Server {
	return &Server{
		Address:       "0.0.0.0",
		Port:          "5000",
		BaseURL:       "",
		Log:           "stdout",
		StaticDir:     "./static",
		StaticURL:     "/static",
		TemplatePath:  "./templates/index.html",
		VideoDir:      "",
		DefaultFolder: "dian_gun",
		CheckSchedule: "@every 5m",
		Folders:       DefaultFolders(),
	}
}

// Clean cleans any variables that might need cleaning.
func (s *Server) Clean() {
	s.BaseURL = strings.TrimSuffix(s.BaseURL, "/")
	s.StaticURL = "/" + strings.Trim(s.StaticURL, "/")
	s.DefaultFolder = strings.TrimSpace(s.DefaultFolder)
	for i := range s.Folders {
		s.Folders[i].Key = strings.TrimSpace(s.Folders[i].Key)
	}
}

// Validate checks the folder registry configuration. The default folder
// must name one of the configured keys.
func (s *Server) Validate() error {
	if len(s.Folders) == 0 {
		return ErrNoFolders
	}

	seen := make(map[string]struct{}, len(s.Folders))
	for _, f := range s.Folders {
		if f.Key == "" {
			return fmt.Errorf("%w: path %q", ErrEmptyFolderKey, f.Path)
		}
		if _, ok := seen[f.Key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateFolderKey, f.Key)
		}
		seen[f.Key] = struct{}{}
	}

	if _, ok := seen[s.DefaultFolder]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDefault, s.DefaultFolder)
	}
	return nil
}

// ListenAddr is the host:port pair the server binds to.
func (s *Server) ListenAddr() string {
	return net.JoinHostPort(s.Address, s.Port)
}
