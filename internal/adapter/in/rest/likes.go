package rest

import (
	"net/http"

	"techblog/internal/model"
)

func (api *API) toggleLikeHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	state, err := api.likes.ToggleLike(r.Context(), postID, identityFromContext(r.Context()).UserID)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toLikeResponse(state))
}

func (api *API) likeStateHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	state, err := api.likes.GetLikeState(r.Context(), postID, identityFromContext(r.Context()).UserID)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toLikeResponse(state))
}

func toLikeResponse(s model.LikeState) likeResponse {
	return likeResponse{Liked: s.Liked, Count: s.Count}
}
