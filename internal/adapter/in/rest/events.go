package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"techblog/pkg/logger"
)

const sseKeepAlive = 25 * time.Second

// eventsHandler streams DisplayChanged events for one post as server-sent
// events until the client goes away.
func (api *API) eventsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	events, err := api.comments.Listen(ctx, postID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rc := http.NewResponseController(w)
	// the server write timeout would otherwise cut the stream
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		log.Warn("sse flush unsupported", "error", err)
		return
	}

	ticker := time.NewTicker(sseKeepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				log.Error("marshal display event", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: display_changed\ndata: %s\n\n", data); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}
