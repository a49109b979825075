package handlers

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"blogclone/pkg/session"

	"go.uber.org/zap"
)

type UserHandler struct {
	SavedRepo SavedPostsRepo
	Logger    *zap.SugaredLogger
}

type SavedPostsRepo interface {
	SavedPostIDs(userID int64) ([]string, error)
	ToggleSaved(userID int64, postID string) (bool, error)
}

type SavedPostsResponse struct {
	Saved []string `json:"saved"`
}

type ToggleSavedReq struct {
	PostID *string `json:"postId"`
}

type ToggleSavedResponse struct {
	PostID string `json:"postId"`
	Saved  bool   `json:"saved"`
}

func (h *UserHandler) Saved(w http.ResponseWriter, r *http.Request) {
	sess, err := session.FromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ids, err := h.SavedRepo.SavedPostIDs(sess.User.ID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, &SavedPostsResponse{Saved: ids}, http.StatusOK)
}

func (h *UserHandler) ToggleSaved(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req ToggleSavedReq
	err = json.Unmarshal(body, &req)
	if err != nil || req.PostID == nil || *req.PostID == "" {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	sess, err := session.FromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	saved, err := h.SavedRepo.ToggleSaved(sess.User.ID, *req.PostID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, &ToggleSavedResponse{PostID: *req.PostID, Saved: saved}, http.StatusOK)
}
