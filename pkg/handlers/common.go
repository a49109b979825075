package handlers

import (
	"encoding/json"
	"net/http"

	"blogclone/pkg/posts"
	"blogclone/pkg/session"
)

type Response struct {
	Message string `json:"message"`
}

type CustomError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

type ErrorsResponse struct {
	Errors []*CustomError `json:"errors"`
}

func WriteResponse(w http.ResponseWriter, msg string, status int) {
	resp := &Response{Message: msg}
	res, err := json.Marshal(resp)
	if err != nil {
		w.WriteHeader(status)
		return
	}

	w.WriteHeader(status)
	w.Write(res)
}

func writeErrorsResponse(w http.ResponseWriter, errors []*CustomError, status int) {
	errorsJSON, err := json.Marshal(&ErrorsResponse{Errors: errors})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}

	w.WriteHeader(status)
	w.Write(errorsJSON)
}

func writeJSON(w http.ResponseWriter, v interface{}, status int) error {
	respBytes, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}

	w.WriteHeader(status)
	w.Write(respBytes)
	return nil
}

func mapToPostResponse(p *posts.Post, author *Author, viewer *session.Session) *PostResponse {
	liked := false
	if viewer != nil {
		liked = p.LikedByUser(viewer.User.ID)
	}

	return &PostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		Desc:       p.Desc,
		Img:        p.Img,
		Category:   p.Category,
		Content:    p.Content,
		IsFeatured: p.IsFeatured,
		Author:     author,
		Views:      p.Views,
		Likes:      p.LikeCount(),
		Liked:      liked,
		ShareCount: p.Shares,
		Created:    p.Created,
	}
}
