package http

import (
	"encoding/json"
	"net/http"

	"musicplayer/pkg/common"

	"github.com/go-playground/validator/v10"
	"k8s.io/klog/v2"
)

const maxSetFolderBody = 1 << 16

var validate = validator.New()

type setFolderRequest struct {
	Folder string `json:"folder" validate:"required"`
}

type setFolderResponse struct {
	Status  string `json:"status"`
	Current string `json:"current"`
}

// A body that cannot be decoded or lacks the folder field is rejected the
// same way as an unknown key.
func setFolderHandler(w http.ResponseWriter, r *http.Request, d *data) (int, error) {
	var req setFolderRequest
	body := http.MaxBytesReader(w, r.Body, maxSetFolderBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		klog.Warningf("decode set-folder request failed: %v", err)
		return http.StatusBadRequest, common.ErrInvalidFolderKey
	}

	if err := validate.Struct(req); err != nil {
		klog.Warningf("invalid set-folder request: %v", err)
		return http.StatusBadRequest, common.ErrInvalidFolderKey
	}

	if err := d.library.SetFolder(req.Folder); err != nil {
		return common.ErrToStatus(err), err
	}

	return renderJSON(w, r, setFolderResponse{
		Status:  common.StatusOK,
		Current: req.Folder,
	})
}

func foldersGetHandler(w http.ResponseWriter, r *http.Request, d *data) (int, error) {
	return renderJSON(w, r, d.library.Folders())
}
