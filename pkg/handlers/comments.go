package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"blogclone/pkg/comments"
	"blogclone/pkg/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type CommentHandler struct {
	CommentsRepo CommentsRepo
	PostsRepo    PostsRepo
	UsersRepo    UsersRepo
	Logger       *zap.SugaredLogger
}

type CommentsRepo interface {
	GetByPostID(ctx context.Context, postID interface{}) ([]*comments.Comment, error)
	Add(ctx context.Context, c *comments.Comment) (interface{}, error)
	DeleteOwned(ctx context.Context, id interface{}, authorID int64) (bool, error)

	ParseID(string) (interface{}, error)
}

type CommentResponse struct {
	ID      interface{} `json:"id"`
	Author  *Author     `json:"author"`
	Body    string      `json:"body"`
	Created time.Time   `json:"created"`
}

type CreateCommentReq struct {
	Comment *string `json:"comment"`
}

func (c *CreateCommentReq) validate() []*CustomError {
	comment := &Validator{value: c.Comment, location: "body", field: "comment"}
	commentErr := func() *CustomError {
		err := comment.Required()
		if err != nil {
			return err
		}
		return comment.Empty()
	}()

	return mergeErrors(commentErr)
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	postID, err := h.PostsRepo.ParseID(mux.Vars(r)["post_id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	commentsDb, err := h.CommentsRepo.GetByPostID(ctx, postID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp, err := h.mapToCommentsResponse(commentsDb)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp, http.StatusOK)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := h.PostsRepo.ParseID(mux.Vars(r)["post_id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CreateCommentReq
	err = json.Unmarshal(body, &req)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := req.validate()
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	sess, err := session.FromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	post, err := h.PostsRepo.GetByID(ctx, postID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if post == nil {
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}

	comment := &comments.Comment{
		PostID:   postID,
		AuthorID: sess.User.ID,
		Body:     *req.Comment,
		Created:  time.Now(),
	}

	id, err := h.CommentsRepo.Add(ctx, comment)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	comment.ID = id

	resp := &CommentResponse{
		ID:      comment.ID,
		Author:  &Author{Username: sess.User.Username, ID: sess.User.ID},
		Body:    comment.Body,
		Created: comment.Created,
	}
	writeJSON(w, resp, http.StatusCreated)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.CommentsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	sess, err := session.FromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	ok, err := h.CommentsRepo.DeleteOwned(ctx, id, sess.User.ID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !ok {
		WriteResponse(w, "comment not found", http.StatusNotFound)
		return
	}

	WriteResponse(w, "success", http.StatusOK)
}

func (h *CommentHandler) mapToCommentsResponse(commentsDb []*comments.Comment) ([]*CommentResponse, error) {
	result := make([]*CommentResponse, 0, len(commentsDb))
	for _, c := range commentsDb {
		author, err := h.UsersRepo.GetByID(c.AuthorID)
		if err != nil {
			return nil, err
		}

		mapped := &CommentResponse{ID: c.ID, Body: c.Body, Created: c.Created}
		if author != nil {
			mapped.Author = &Author{Username: author.Username, ID: author.ID}
		} else {
			mapped.Author = &Author{ID: c.AuthorID}
		}
		result = append(result, mapped)
	}

	return result, nil
}
