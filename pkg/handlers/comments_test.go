package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogclone/pkg/comments"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var commentIDs = []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

var testCommentData = []*comments.Comment{
	{ID: commentIDs[0], PostID: postIDs[0], AuthorID: userIDs[0], Body: "great trip", Created: created},
	{ID: commentIDs[1], PostID: postIDs[0], AuthorID: userIDs[1], Body: "where is this?", Created: created},
}

type commentEnv struct {
	handler      *CommentHandler
	commentsRepo *MockCommentsRepo
	postsRepo    *MockPostsRepo
	usersRepo    *MockUsersRepo
}

func newCommentEnv(ctrl *gomock.Controller) *commentEnv {
	env := &commentEnv{
		commentsRepo: NewMockCommentsRepo(ctrl),
		postsRepo:    NewMockPostsRepo(ctrl),
		usersRepo:    NewMockUsersRepo(ctrl),
	}
	env.handler = &CommentHandler{
		CommentsRepo: env.commentsRepo,
		PostsRepo:    env.postsRepo,
		UsersRepo:    env.usersRepo,
		Logger:       zap.NewNop().Sugar(),
	}

	for i := range testUserData {
		env.usersRepo.EXPECT().GetByID(testUserData[i].ID).Return(testUserData[i], nil).AnyTimes()
	}

	return env
}

func TestCommentsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newCommentEnv(ctrl)

	env.postsRepo.EXPECT().ParseID(postIDs[0].Hex()).Return(postIDs[0], nil)
	env.commentsRepo.EXPECT().GetByPostID(gomock.Any(), postIDs[0]).Return(testCommentData, nil)

	req := httptest.NewRequest(http.MethodGet, "/comments/"+postIDs[0].Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"post_id": postIDs[0].Hex()})
	w := httptest.NewRecorder()

	env.handler.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %v", w.Code)
	}

	var resp []*CommentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 comments, got %v", len(resp))
	}
	if resp[0].Author.Username != "test1" || resp[1].Author.Username != "test2" {
		t.Errorf("unexpected authors: %+v", resp)
	}
}

func TestCommentCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newCommentEnv(ctrl)

	newID := primitive.NewObjectID()
	env.postsRepo.EXPECT().ParseID(postIDs[0].Hex()).Return(postIDs[0], nil)
	env.postsRepo.EXPECT().GetByID(gomock.Any(), postIDs[0]).Return(testPostData[0], nil)
	env.commentsRepo.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(&comments.Comment{})).Return(newID, nil)

	body, _ := json.Marshal(map[string]string{"comment": "well written"})
	req := httptest.NewRequest(http.MethodPost, "/comments/"+postIDs[0].Hex(), bytes.NewReader(body))
	req = withSession(req, userIDs[0], "user")
	req = mux.SetURLVars(req, map[string]string{"post_id": postIDs[0].Hex()})
	w := httptest.NewRecorder()

	env.handler.Create(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %v: %v", w.Code, w.Body.String())
	}

	resp := &CommentResponse{}
	if err := json.Unmarshal(w.Body.Bytes(), resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Body != "well written" || resp.Author.ID != userIDs[0] {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCommentCreateEmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newCommentEnv(ctrl)

	env.postsRepo.EXPECT().ParseID(postIDs[0].Hex()).Return(postIDs[0], nil)

	body, _ := json.Marshal(map[string]string{"comment": ""})
	req := httptest.NewRequest(http.MethodPost, "/comments/"+postIDs[0].Hex(), bytes.NewReader(body))
	req = withSession(req, userIDs[0], "user")
	req = mux.SetURLVars(req, map[string]string{"post_id": postIDs[0].Hex()})
	w := httptest.NewRecorder()

	env.handler.Create(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", w.Code)
	}
}

func TestCommentCreateMissingPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newCommentEnv(ctrl)

	env.postsRepo.EXPECT().ParseID(postIDs[2].Hex()).Return(postIDs[2], nil)
	env.postsRepo.EXPECT().GetByID(gomock.Any(), postIDs[2]).Return(nil, nil)

	body, _ := json.Marshal(map[string]string{"comment": "into the void"})
	req := httptest.NewRequest(http.MethodPost, "/comments/"+postIDs[2].Hex(), bytes.NewReader(body))
	req = withSession(req, userIDs[0], "user")
	req = mux.SetURLVars(req, map[string]string{"post_id": postIDs[2].Hex()})
	w := httptest.NewRecorder()

	env.handler.Create(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", w.Code)
	}
}

func TestCommentDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newCommentEnv(ctrl)

	env.commentsRepo.EXPECT().ParseID(commentIDs[0].Hex()).Return(commentIDs[0], nil)
	env.commentsRepo.EXPECT().DeleteOwned(gomock.Any(), commentIDs[0], userIDs[0]).Return(true, nil)

	req := httptest.NewRequest(http.MethodDelete, "/comments/"+commentIDs[0].Hex(), nil)
	req = withSession(req, userIDs[0], "user")
	req = mux.SetURLVars(req, map[string]string{"id": commentIDs[0].Hex()})
	w := httptest.NewRecorder()

	env.handler.Delete(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %v", w.Code)
	}
}

func TestCommentDeleteForeign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newCommentEnv(ctrl)

	env.commentsRepo.EXPECT().ParseID(commentIDs[0].Hex()).Return(commentIDs[0], nil)
	env.commentsRepo.EXPECT().DeleteOwned(gomock.Any(), commentIDs[0], userIDs[1]).Return(false, nil)

	req := httptest.NewRequest(http.MethodDelete, "/comments/"+commentIDs[0].Hex(), nil)
	req = withSession(req, userIDs[1], "user")
	req = mux.SetURLVars(req, map[string]string{"id": commentIDs[0].Hex()})
	w := httptest.NewRecorder()

	env.handler.Delete(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", w.Code)
	}
}
