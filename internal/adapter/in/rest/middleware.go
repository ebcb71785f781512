package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"techblog/internal/model"
	"techblog/pkg/logger"

	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-Id"
	headerUserID    = "X-User-ID"
	headerUserRole  = "X-User-Role"
)

type ctxKeyIdentity struct{}

func identityFromContext(ctx context.Context) model.Identity {
	id, _ := ctx.Value(ctxKeyIdentity{}).(model.Identity)
	return id
}

func (api *API) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(headerRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(headerRequestID, reqID)

		log := api.log.With("request_id", reqID)
		next.ServeHTTP(w, r.WithContext(logger.WithLogger(r.Context(), log)))
	})
}

func (api *API) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		logger.FromContext(r.Context()).Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start),
		)
	})
}

// identityMiddleware trusts the identity headers set by the session layer in
// front of this service. A missing X-User-ID is an anonymous request.
func (api *API) identityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id model.Identity

		if raw := strings.TrimSpace(r.Header.Get(headerUserID)); raw != "" {
			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID < 0 {
				writeJSONError(w, http.StatusBadRequest, "invalid "+headerUserID+" header")
				return
			}
			id = model.Identity{UserID: userID, Role: model.ParseRole(r.Header.Get(headerUserRole))}
		}

		if id.IsAuthenticated() {
			log := logger.FromContext(r.Context()).With("user_id", id.UserID)
			r = r.WithContext(logger.WithLogger(r.Context(), log))
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyIdentity{}, id)))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach Flush and deadlines on the
// underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
