package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/mocks"
	"github.com/phrazzld/podcast-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListPodcasts(t *testing.T) {
	podcasts := &mocks.TestifyMockPodcastService{}
	podcasts.On("GetAllPodcasts", mock.Anything).Return(service.Ok([]domain.Podcast{
		{ID: 1, Title: "Go Time", Category: "Tech"},
	}))

	rec := doRequest(t, newPodcastRouter(NewPodcastHandler(podcasts)), http.MethodGet, "/api/podcasts", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	list := body["podcasts"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "Go Time", list[0].(map[string]interface{})["title"])
}

func TestCreatePodcast(t *testing.T) {
	podcasts := &mocks.TestifyMockPodcastService{}
	podcasts.On("CreatePodcast", mock.Anything, service.CreatePodcastInput{Title: "T", Category: "C"}).
		Return(service.Ok(int64(5)))
	router := newPodcastRouter(NewPodcastHandler(podcasts))

	rec := doRequest(t, router, http.MethodPost, "/api/podcasts", map[string]string{"title": "T", "category": "C"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(5), decodeBody(t, rec)["id"])

	rec = doRequest(t, router, http.MethodPost, "/api/podcasts", map[string]string{"title": "T"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	podcasts.AssertNumberOfCalls(t, "CreatePodcast", 1)
}

func TestGetPodcast(t *testing.T) {
	rating := 4
	podcasts := &mocks.TestifyMockPodcastService{}
	podcasts.On("GetPodcast", mock.Anything, int64(1)).Return(service.Ok(&domain.Podcast{
		ID: 1, Title: "T", Category: "C", Rating: &rating,
		Episodes: []domain.Episode{{ID: 3, PodcastID: 1, Title: "E", Category: "C"}},
	}))
	podcasts.On("GetPodcast", mock.Anything, int64(2)).Return(
		service.Reject[*domain.Podcast](service.ErrPodcastNotFound, service.PodcastNotFoundMessage(2)))
	router := newPodcastRouter(NewPodcastHandler(podcasts))

	rec := doRequest(t, router, http.MethodGet, "/api/podcasts/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	podcast := decodeBody(t, rec)["podcast"].(map[string]interface{})
	assert.Equal(t, float64(4), podcast["rating"])
	assert.Len(t, podcast["episodes"], 1)

	rec = doRequest(t, router, http.MethodGet, "/api/podcasts/2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Podcast with id 2 not found", decodeBody(t, rec)["error"])

	rec = doRequest(t, router, http.MethodGet, "/api/podcasts/0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePodcast(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		match      func(service.UpdatePodcastInput) bool
		result     service.Result[struct{}]
		wantStatus int
	}{
		{
			name: "rating set",
			body: `{"rating":3}`,
			match: func(in service.UpdatePodcastInput) bool {
				return in.ID == 7 && in.Rating.Set && !in.Rating.Null && in.Rating.Value == 3 && in.Title == nil
			},
			result:     service.Done(),
			wantStatus: http.StatusOK,
		},
		{
			name: "rating cleared",
			body: `{"rating":null}`,
			match: func(in service.UpdatePodcastInput) bool {
				return in.Rating.Set && in.Rating.Null
			},
			result:     service.Done(),
			wantStatus: http.StatusOK,
		},
		{
			name: "rating absent",
			body: `{"title":"New"}`,
			match: func(in service.UpdatePodcastInput) bool {
				return !in.Rating.Set && in.Title != nil && *in.Title == "New"
			},
			result:     service.Done(),
			wantStatus: http.StatusOK,
		},
		{
			name:       "rating out of range",
			body:       `{"rating":9}`,
			match:      func(in service.UpdatePodcastInput) bool { return in.Rating.Value == 9 },
			result:     service.Reject[struct{}](service.ErrInvalidRating, service.MsgInvalidRating),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "infrastructure failure",
			body:       `{"title":"x"}`,
			match:      func(service.UpdatePodcastInput) bool { return true },
			result:     service.Fail[struct{}](service.MsgInternal, errors.New("db")),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			podcasts := &mocks.TestifyMockPodcastService{}
			podcasts.On("UpdatePodcast", mock.Anything, mock.MatchedBy(tt.match)).Return(tt.result)

			rec := doRequest(t, newPodcastRouter(NewPodcastHandler(podcasts)), http.MethodPatch,
				"/api/podcasts/7", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			podcasts.AssertExpectations(t)
		})
	}
}

func TestDeletePodcast(t *testing.T) {
	podcasts := &mocks.TestifyMockPodcastService{}
	podcasts.On("DeletePodcast", mock.Anything, int64(1)).Return(service.Done())
	podcasts.On("DeletePodcast", mock.Anything, int64(2)).Return(
		service.Reject[struct{}](service.ErrPodcastNotFound, service.PodcastNotFoundMessage(2)))
	router := newPodcastRouter(NewPodcastHandler(podcasts))

	assert.Equal(t, http.StatusOK, doRequest(t, router, http.MethodDelete, "/api/podcasts/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodDelete, "/api/podcasts/2", nil).Code)
}

func TestEpisodeRoutes(t *testing.T) {
	ref := service.EpisodeRef{PodcastID: 1, EpisodeID: 3}
	missing := service.EpisodeRef{PodcastID: 1, EpisodeID: 4}

	podcasts := &mocks.TestifyMockPodcastService{}
	podcasts.On("GetEpisodes", mock.Anything, int64(1)).Return(service.Ok([]domain.Episode{{ID: 3, PodcastID: 1}}))
	podcasts.On("CreateEpisode", mock.Anything, service.CreateEpisodeInput{PodcastID: 1, Title: "E", Category: "C"}).
		Return(service.Ok(int64(3)))
	podcasts.On("GetEpisode", mock.Anything, ref).Return(service.Ok(&domain.Episode{ID: 3, PodcastID: 1, Title: "E"}))
	podcasts.On("GetEpisode", mock.Anything, missing).Return(
		service.Reject[*domain.Episode](service.ErrEpisodeNotFound, service.EpisodeNotFoundMessage(missing)))
	podcasts.On("UpdateEpisode", mock.Anything, service.UpdateEpisodeInput{
		PodcastID: 1, EpisodeID: 3, Title: strPtr("Renamed"),
	}).Return(service.Done())
	podcasts.On("DeleteEpisode", mock.Anything, ref).Return(service.Done())
	router := newPodcastRouter(NewPodcastHandler(podcasts))

	rec := doRequest(t, router, http.MethodGet, "/api/podcasts/1/episodes", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["episodes"], 1)

	rec = doRequest(t, router, http.MethodPost, "/api/podcasts/1/episodes",
		map[string]string{"title": "E", "category": "C"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/podcasts/1/episodes/3", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "E", decodeBody(t, rec)["episode"].(map[string]interface{})["title"])

	rec = doRequest(t, router, http.MethodGet, "/api/podcasts/1/episodes/4", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Episode with id 4 not found in podcast with id 1", decodeBody(t, rec)["error"])

	rec = doRequest(t, router, http.MethodPatch, "/api/podcasts/1/episodes/3", map[string]string{"title": "Renamed"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/podcasts/1/episodes/3", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/podcasts/1/episodes/x", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	podcasts.AssertExpectations(t)
}
