package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"techblog/internal/model"
	"techblog/internal/service"
	"techblog/pkg/calendar"
	"techblog/pkg/pagination"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type CommentService interface {
	CreateComment(ctx context.Context, req service.CreateCommentRequest) (model.Comment, error)
	EditComment(ctx context.Context, req service.EditCommentRequest) (model.Comment, error)
	DeleteComment(ctx context.Context, req service.DeleteCommentRequest) (model.DeleteResult, error)
	ListThread(ctx context.Context, postID int64) ([]model.Comment, error)
	ListThreadPage(ctx context.Context, postID int64, in pagination.PageRequest) (pagination.Page[model.Comment], error)
	Listen(ctx context.Context, postID int64) (<-chan model.DisplayChanged, error)
}

type LikeService interface {
	ToggleLike(ctx context.Context, postID, userID int64) (model.LikeState, error)
	GetLikeState(ctx context.Context, postID, userID int64) (model.LikeState, error)
}

type PostService interface {
	CreatePost(ctx context.Context, req service.CreatePostRequest) (model.Post, error)
	DeletePost(ctx context.Context, actor model.Identity, postID int64) error
}

type ActivityService interface {
	Calendar(ctx context.Context, today time.Time) (calendar.Grid, error)
}

type API struct {
	r        *mux.Router
	log      *slog.Logger
	comments CommentService
	likes    LikeService
	posts    PostService
	activity ActivityService
	now      func() time.Time
}

func New(log *slog.Logger, comments CommentService, likes LikeService, posts PostService, activity ActivityService) *API {
	if log == nil {
		log = slog.Default()
	}
	api := &API{
		r:        mux.NewRouter(),
		log:      log,
		comments: comments,
		likes:    likes,
		posts:    posts,
		activity: activity,
		now:      time.Now,
	}
	api.endpoints()
	return api
}

func (api *API) Router() *mux.Router {
	return api.r
}

// Handler wraps the router with CORS for the given origins. An empty list
// allows any origin.
func (api *API) Handler(allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", headerRequestID, headerUserID, headerUserRole},
		ExposedHeaders: []string{headerRequestID},
	})
	return c.Handler(api.r)
}

func (api *API) endpoints() {
	api.r.Use(api.requestIDMiddleware, api.loggingMiddleware, api.identityMiddleware)

	api.r.HandleFunc("/healthz", api.healthHandler).Methods(http.MethodGet)

	api.r.HandleFunc("/posts", api.createPostHandler).Methods(http.MethodPost)
	api.r.HandleFunc("/posts/{postID:[0-9]+}", api.deletePostHandler).Methods(http.MethodDelete)

	api.r.HandleFunc("/posts/{postID:[0-9]+}/comments", api.listThreadHandler).Methods(http.MethodGet)
	api.r.HandleFunc("/posts/{postID:[0-9]+}/comments/page", api.listThreadPageHandler).Methods(http.MethodGet)
	api.r.HandleFunc("/posts/{postID:[0-9]+}/comments", api.createCommentHandler).Methods(http.MethodPost)
	api.r.HandleFunc("/comments/{commentID:[0-9]+}", api.editCommentHandler).Methods(http.MethodPatch)
	api.r.HandleFunc("/comments/{commentID:[0-9]+}", api.deleteCommentHandler).Methods(http.MethodDelete)

	api.r.HandleFunc("/posts/{postID:[0-9]+}/like", api.toggleLikeHandler).Methods(http.MethodPost)
	api.r.HandleFunc("/posts/{postID:[0-9]+}/like", api.likeStateHandler).Methods(http.MethodGet)

	api.r.HandleFunc("/posts/{postID:[0-9]+}/events", api.eventsHandler).Methods(http.MethodGet)

	api.r.HandleFunc("/activity", api.activityHandler).Methods(http.MethodGet)
}

func (api *API) healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
