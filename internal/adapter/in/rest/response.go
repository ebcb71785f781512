package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"techblog/internal/model"
	"techblog/internal/service"
	"techblog/pkg/calendar"
	"techblog/pkg/logger"

	"github.com/gorilla/mux"
)

type commentResponse struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	AuthorID  int64     `json:"authorId"`
	ParentID  *int64    `json:"parentId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsEdited  bool      `json:"isEdited"`
	IsDeleted bool      `json:"isDeleted"`
}

func toCommentResponse(c model.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		IsEdited:  c.IsEdited(),
		IsDeleted: c.IsDeleted(),
	}
}

func toCommentResponses(cs []model.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCommentResponse(c))
	}
	return out
}

type threadNode struct {
	commentResponse
	Replies []*threadNode `json:"replies"`
}

type threadResponse struct {
	Items []commentResponse `json:"items"`
	Tree  []*threadNode     `json:"tree"`
}

// toThreadResponse nests the comments without recursion; Walk yields parents
// before replies, so the node at depth-1 on the stack is always the parent.
func toThreadResponse(cs []model.Comment) threadResponse {
	res := threadResponse{
		Items: toCommentResponses(cs),
		Tree:  []*threadNode{},
	}

	var stack []*threadNode
	model.BuildThread(cs).Walk(func(c model.Comment, depth int) bool {
		node := &threadNode{commentResponse: toCommentResponse(c), Replies: []*threadNode{}}
		stack = append(stack[:depth], node)
		if depth == 0 {
			res.Tree = append(res.Tree, node)
		} else {
			parent := stack[depth-1]
			parent.Replies = append(parent.Replies, node)
		}
		return true
	})
	return res
}

type pageResponse struct {
	Count       int               `json:"count"`
	Items       []commentResponse `json:"items"`
	StartCursor *string           `json:"startCursor"`
	EndCursor   *string           `json:"endCursor"`
	HasNextPage bool              `json:"hasNextPage"`
}

type deleteResponse struct {
	Mode    string           `json:"mode"`
	Removed int64            `json:"removed"`
	Comment *commentResponse `json:"comment,omitempty"`
}

type likeResponse struct {
	Liked bool `json:"liked"`
	Count int  `json:"count"`
}

type postResponse struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"authorId"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type cellResponse struct {
	Date     string `json:"date"`
	Count    int    `json:"count"`
	Level    int    `json:"level"`
	InWindow bool   `json:"inWindow"`
}

type weekResponse struct {
	MonthLabel string         `json:"monthLabel,omitempty"`
	Days       []cellResponse `json:"days"`
}

type calendarResponse struct {
	Start       string         `json:"start"`
	End         string         `json:"end"`
	WindowStart string         `json:"windowStart"`
	WindowEnd   string         `json:"windowEnd"`
	Total       int            `json:"total"`
	MaxLevel    int            `json:"maxLevel"`
	Weeks       []weekResponse `json:"weeks"`
}

func toCalendarResponse(g calendar.Grid) calendarResponse {
	res := calendarResponse{
		Start:       g.Start.Format(calendar.DateLayout),
		End:         g.End.Format(calendar.DateLayout),
		WindowStart: g.WindowStart.Format(calendar.DateLayout),
		WindowEnd:   g.WindowEnd.Format(calendar.DateLayout),
		Total:       g.Total,
		MaxLevel:    g.MaxLevel,
		Weeks:       make([]weekResponse, 0, len(g.Weeks)),
	}
	for _, w := range g.Weeks {
		wr := weekResponse{MonthLabel: w.MonthLabel, Days: make([]cellResponse, 0, len(w.Days))}
		for _, c := range w.Days {
			wr.Days = append(wr.Days, cellResponse{
				Date:     c.Key(),
				Count:    c.Count,
				Level:    c.Level,
				InWindow: c.InWindow,
			})
		}
		res.Weeks = append(res.Weeks, wr)
	}
	return res
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps service errors onto status codes. Unauthorized becomes 401
// for anonymous callers and 403 for everybody else.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		if !identityFromContext(ctx).IsAuthenticated() {
			writeJSONError(w, http.StatusUnauthorized, err.Error())
			return
		}
		writeJSONError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidRequest):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	default:
		logger.FromContext(ctx).Error("request failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Join(service.ErrInvalidRequest, errors.New("invalid "+name))
	}
	return id, nil
}
