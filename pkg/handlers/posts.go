package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"blogclone/pkg/actor"
	"blogclone/pkg/engagement"
	"blogclone/pkg/posts"
	"blogclone/pkg/session"
	"blogclone/pkg/user"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const defaultPageSize = 2

type PostHandler struct {
	PostsRepo  PostsRepo
	UsersRepo  UsersRepo
	Engagement EngagementService
	Actors     *actor.Resolver
	Logger     *zap.SugaredLogger
}

type PostsRepo interface {
	GetPage(ctx context.Context, f posts.ListFilter, page, limit int64) ([]*posts.Post, bool, error)
	GetBySlug(ctx context.Context, slug string) (*posts.Post, error)
	GetByID(ctx context.Context, id interface{}) (*posts.Post, error)
	Add(ctx context.Context, p *posts.Post) (interface{}, error)
	Delete(ctx context.Context, id interface{}) (bool, error)
	DeleteOwned(ctx context.Context, id interface{}, authorID int64) (bool, error)

	ParseID(string) (interface{}, error)
}

type UsersRepo interface {
	GetByID(id int64) (*user.User, error)
}

type EngagementService interface {
	RecordView(ctx context.Context, post *posts.Post, a actor.Identity) (uint64, error)
	ToggleLike(ctx context.Context, postID interface{}, a actor.Identity) (*engagement.LikeResult, error)
	IncrementShare(ctx context.Context, postID interface{}) (uint64, error)
}

type PostResponse struct {
	ID         interface{} `json:"id"`
	Title      string      `json:"title"`
	Slug       string      `json:"slug"`
	Desc       string      `json:"desc,omitempty"`
	Img        string      `json:"img,omitempty"`
	Category   string      `json:"category"`
	Content    string      `json:"content"`
	IsFeatured bool        `json:"isFeatured"`
	Author     *Author     `json:"author"`
	Views      uint64      `json:"views"`
	Likes      int         `json:"likes"`
	Liked      bool        `json:"liked"`
	ShareCount uint64      `json:"shareCount"`
	Created    time.Time   `json:"created"`
}

type PostsPageResponse struct {
	Posts   []*PostResponse `json:"posts"`
	HasMore bool            `json:"hasMore"`
}

type Author struct {
	Username string `json:"username"`
	ID       int64  `json:"id"`
}

type CreatePostReq struct {
	Title      *string `json:"title"`
	Desc       *string `json:"desc"`
	Img        *string `json:"img"`
	Category   *string `json:"category"`
	Content    *string `json:"content"`
	IsFeatured bool    `json:"isFeatured"`
}

func (p *CreatePostReq) validate() []*CustomError {
	title := &Validator{value: p.Title, location: "body", field: "title"}
	titleErr := func() *CustomError {
		err := title.Required()
		if err != nil {
			return err
		}
		err = title.Empty()
		if err != nil {
			return err
		}
		err = title.MaxLength(100)
		if err != nil {
			return err
		}
		return title.Custom(func(value string) bool {
			return strings.TrimSpace(value) == value
		}, "cannot start or end with whitespace")
	}()

	content := &Validator{value: p.Content, location: "body", field: "content"}
	contentErr := func() *CustomError {
		err := content.Required()
		if err != nil {
			return err
		}
		return content.MinLength(4)
	}()

	return mergeErrors(titleErr, contentErr)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", defaultPageSize)

	filter := posts.ListFilter{Category: r.URL.Query().Get("category")}
	if r.URL.Query().Get("featured") == "true" {
		filter.Featured = true
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	postsDb, hasMore, err := h.PostsRepo.GetPage(ctx, filter, page, limit)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	sess, _ := session.FromContext(r.Context())
	postsResp := make([]*PostResponse, 0, len(postsDb))
	for _, p := range postsDb {
		author, err := h.getAuthor(p.AuthorID)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		postsResp = append(postsResp, mapToPostResponse(p, author, sess))
	}

	writeJSON(w, &PostsPageResponse{Posts: postsResp, HasMore: hasMore}, http.StatusOK)
}

// GetBySlug serves a single post and counts the view. Counting is best
// effort: if the ledger or the counter update fails the post is still
// served, with the last known count.
func (h *PostHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	post, err := h.PostsRepo.GetBySlug(ctx, slug)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if post == nil {
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}

	a := h.Actors.Resolve(r)
	viewCount, err := h.Engagement.RecordView(ctx, post, a)
	if err != nil {
		h.Logger.Errorw("view not counted", "slug", slug, "error", err.Error())
	}
	post.Views = viewCount

	author, err := h.getAuthor(post.AuthorID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	sess, _ := session.FromContext(r.Context())
	writeJSON(w, mapToPostResponse(post, author, sess), http.StatusOK)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CreatePostReq
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

	post := &posts.Post{
		AuthorID:   sess.User.ID,
		Title:      *req.Title,
		IsFeatured: req.IsFeatured,
		Created:    time.Now(),
	}
	post.Content = *req.Content
	if req.Desc != nil {
		post.Desc = *req.Desc
	}
	if req.Img != nil {
		post.Img = *req.Img
	}
	if req.Category != nil {
		post.Category = *req.Category
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	id, err := h.PostsRepo.Add(ctx, post)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	post.ID = id

	author := &Author{Username: sess.User.Username, ID: sess.User.ID}
	writeJSON(w, mapToPostResponse(post, author, sess), http.StatusCreated)
}

// Delete removes a post: owners delete their own, admins anyone's.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
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
	var ok bool
	if sess.IsAdmin() {
		ok, err = h.PostsRepo.Delete(ctx, id)
	} else {
		ok, err = h.PostsRepo.DeleteOwned(ctx, id, sess.User.ID)
	}
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !ok {
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}

	WriteResponse(w, "success", http.StatusOK)
}

func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["post_id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	a := h.Actors.Resolve(r)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	res, err := h.Engagement.ToggleLike(ctx, id, a)
	if err != nil {
		h.writeEngagementError(w, err)
		return
	}

	writeJSON(w, res, http.StatusOK)
}

func (h *PostHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["post_id"])
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	shareCount, err := h.Engagement.IncrementShare(ctx, id)
	if err != nil {
		h.writeEngagementError(w, err)
		return
	}

	writeJSON(w, map[string]uint64{"shareCount": shareCount}, http.StatusOK)
}

func (h *PostHandler) writeEngagementError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engagement.ErrUnauthenticated):
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, engagement.ErrNotFound):
		WriteResponse(w, "post not found", http.StatusNotFound)
	default:
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *PostHandler) getAuthor(authorID int64) (*Author, error) {
	u, err := h.UsersRepo.GetByID(authorID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		// author deleted upstream; keep the id so clients can still key on it
		return &Author{ID: authorID}, nil
	}

	return &Author{Username: u.Username, ID: u.ID}, nil
}

func queryInt(r *http.Request, name string, def int64) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val < 1 {
		return def
	}

	return val
}
