package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"techblog/internal/model"
	"techblog/internal/service"
	"techblog/pkg/pagination"
)

type createCommentBody struct {
	Content  string `json:"content"`
	ParentID *int64 `json:"parentId"`
}

type editCommentBody struct {
	Content string `json:"content"`
}

func (api *API) listThreadHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	comments, err := api.comments.ListThread(r.Context(), postID)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toThreadResponse(comments))
}

func (api *API) listThreadPageHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var req pagination.PageRequest
	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		req.Limit = limit
	}
	if after := q.Get("after"); after != "" {
		req.AfterCursor = &after
	}

	page, err := api.comments.ListThreadPage(r.Context(), postID, req)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse{
		Count:       page.Count,
		Items:       toCommentResponses(page.Items),
		StartCursor: page.StartCursor,
		EndCursor:   page.EndCursor,
		HasNextPage: page.HasNextPage,
	})
}

func (api *API) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var body createCommentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer r.Body.Close()

	c, err := api.comments.CreateComment(r.Context(), service.CreateCommentRequest{
		PostID:   postID,
		ParentID: body.ParentID,
		AuthorID: identityFromContext(r.Context()).UserID,
		Content:  body.Content,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}

func (api *API) editCommentHandler(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "commentID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var body editCommentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer r.Body.Close()

	c, err := api.comments.EditComment(r.Context(), service.EditCommentRequest{
		CommentID: commentID,
		EditorID:  identityFromContext(r.Context()).UserID,
		Content:   body.Content,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponse(c))
}

func (api *API) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "commentID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	res, err := api.comments.DeleteComment(r.Context(), service.DeleteCommentRequest{
		CommentID: commentID,
		Actor:     identityFromContext(r.Context()),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out := deleteResponse{Mode: res.Mode.String(), Removed: res.Removed}
	if res.Mode == model.DeletionSoft {
		c := toCommentResponse(res.Comment)
		out.Comment = &c
	}
	writeJSON(w, http.StatusOK, out)
}
