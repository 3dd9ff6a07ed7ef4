package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/podcast-api/internal/api/shared"
	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/stretchr/testify/require"
)

var testHost = &domain.User{ID: 11, Email: "host@example.com", Role: domain.RoleHost}

// asUser stands in for the auth middleware.
func asUser(user *domain.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user != nil {
				r = r.WithContext(shared.WithUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func newPodcastRouter(h *PodcastHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(asUser(testHost))
	r.Get("/api/podcasts", h.ListPodcasts)
	r.Post("/api/podcasts", h.CreatePodcast)
	r.Get("/api/podcasts/{id}", h.GetPodcast)
	r.Patch("/api/podcasts/{id}", h.UpdatePodcast)
	r.Delete("/api/podcasts/{id}", h.DeletePodcast)
	r.Get("/api/podcasts/{id}/episodes", h.ListEpisodes)
	r.Post("/api/podcasts/{id}/episodes", h.CreateEpisode)
	r.Get("/api/podcasts/{id}/episodes/{episodeId}", h.GetEpisode)
	r.Patch("/api/podcasts/{id}/episodes/{episodeId}", h.UpdateEpisode)
	r.Delete("/api/podcasts/{id}/episodes/{episodeId}", h.DeleteEpisode)
	return r
}

func newAccountRouter(h *AccountHandler, user *domain.User) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/accounts", h.CreateAccount)
	r.Post("/api/auth/login", h.Login)
	r.Group(func(r chi.Router) {
		r.Use(asUser(user))
		r.Get("/api/me", h.Me)
		r.Patch("/api/me", h.EditProfile)
		r.Get("/api/users/{id}", h.GetUser)
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func strPtr(s string) *string { return &s }
