package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"techblog/internal/service"
	"techblog/pkg/calendar"
)

type createPostBody struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

func (api *API) createPostHandler(w http.ResponseWriter, r *http.Request) {
	var body createPostBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer r.Body.Close()

	p, err := api.posts.CreatePost(r.Context(), service.CreatePostRequest{
		Actor:    identityFromContext(r.Context()),
		Title:    body.Title,
		Category: body.Category,
		Content:  body.Content,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, postResponse{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Title:     p.Title,
		Category:  p.Category,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	})
}

func (api *API) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	if err := api.posts.DeletePost(r.Context(), identityFromContext(r.Context()), postID); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// activityHandler renders the calendar ending at ?today=YYYY-MM-DD, or at the
// current UTC day when the parameter is absent.
func (api *API) activityHandler(w http.ResponseWriter, r *http.Request) {
	today := api.now().UTC()
	if raw := r.URL.Query().Get("today"); raw != "" {
		t, err := time.Parse(calendar.DateLayout, raw)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "today must be YYYY-MM-DD")
			return
		}
		today = t
	}

	grid, err := api.activity.Calendar(r.Context(), today)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCalendarResponse(grid))
}
