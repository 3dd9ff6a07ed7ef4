package api

import (
	"net/http"

	"github.com/phrazzld/podcast-api/internal/api/shared"
	"github.com/phrazzld/podcast-api/internal/service"
)

// PodcastHandler handles podcast and episode API requests.
type PodcastHandler struct {
	podcasts service.PodcastService
}

// NewPodcastHandler creates a new PodcastHandler.
func NewPodcastHandler(podcasts service.PodcastService) *PodcastHandler {
	return &PodcastHandler{podcasts: podcasts}
}

// ListPodcasts handles GET /api/podcasts.
func (h *PodcastHandler) ListPodcasts(w http.ResponseWriter, r *http.Request) {
	res := h.podcasts.GetAllPodcasts(r.Context())
	if !res.OK {
		respondWithFailure(w, r, res.Error)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, PodcastsResponse{OK: true, Podcasts: res.Value})
}

// CreatePodcast handles POST /api/podcasts.
func (h *PodcastHandler) CreatePodcast(w http.ResponseWriter, r *http.Request) {
	var req CreatePodcastRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.podcasts.CreatePodcast(r.Context(), service.CreatePodcastInput{
		Title:    req.Title,
		Category: req.Category,
	})
	if !res.OK {
		respondWithFailure(w, r, res.Error)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, IDResponse{OK: true, ID: res.Value})
}

// GetPodcast handles GET /api/podcasts/{id}.
func (h *PodcastHandler) GetPodcast(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	res := h.podcasts.GetPodcast(r.Context(), id)
	if !res.OK {
		respondWithFailure(w, r, res.Error)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, PodcastResponse{OK: true, Podcast: res.Value})
}

// UpdatePodcast handles PATCH /api/podcasts/{id}.
func (h *PodcastHandler) UpdatePodcast(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdatePodcastRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.podcasts.UpdatePodcast(r.Context(), service.UpdatePodcastInput{
		ID:       id,
		Title:    req.Title,
		Category: req.Category,
		Rating:   req.Rating,
	})
	if !res.OK {
		respondWithFailure(w, r, res.Error)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}

// DeletePodcast handles DELETE /api/podcasts/{id}.
func (h *PodcastHandler) DeletePodcast(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	res := h.podcasts.DeletePodcast(r.Context(), id)
	if !res.OK {
		respondWithFailure(w, r, res.Error)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}

// ListEpisodes handles GET /api/podcasts/{id}/episodes.
func (h *PodcastHandler) ListEpisodes(w http.ResponseWriter, r *http.Request) {
	podcastID, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	res := h.podcasts.GetEpisodes(r.Context(), podcastID)
	if !res.OK {
		respondWithFailure(w, r, res.Error)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, EpisodesResponse{OK: true, Episodes: res.Value})
}

// CreateEpisode handles POST /api/podcasts/{id}/episodes.
func (h *PodcastHandler) CreateEpisode(w http.ResponseWriter, r *http.Request) {
	podcastID, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	var req CreateEpisodeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.podcasts.CreateEpisode(r.Context(), service.CreateEpisodeInput{
		PodcastID: podcastID,
		Title:     req.Title,
		Category:  req.Category,
	})
	if !res.OK {
		respondWithFailure(w, r, res.Error)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, IDResponse{OK: true, ID: res.Value})
}

// GetEpisode handles GET /api/podcasts/{id}/episodes/{episodeId}.
func (h *PodcastHandler) GetEpisode(w http.ResponseWriter, r *http.Request) {
	ref, ok := episodeRef(w, r)
	if !ok {
		return
	}

	res := h.podcasts.GetEpisode(r.Context(), ref)
	if !res.OK {
		respondWithFailure(w, r, res.Error)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, EpisodeResponse{OK: true, Episode: res.Value})
}

// UpdateEpisode handles PATCH /api/podcasts/{id}/episodes/{episodeId}.
func (h *PodcastHandler) UpdateEpisode(w http.ResponseWriter, r *http.Request) {
	ref, ok := episodeRef(w, r)
	if !ok {
		return
	}

	var req UpdateEpisodeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.podcasts.UpdateEpisode(r.Context(), service.UpdateEpisodeInput{
		PodcastID: ref.PodcastID,
		EpisodeID: ref.EpisodeID,
		Title:     req.Title,
		Category:  req.Category,
	})
	if !res.OK {
		respondWithFailure(w, r, res.Error)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}

// DeleteEpisode handles DELETE /api/podcasts/{id}/episodes/{episodeId}.
func (h *PodcastHandler) DeleteEpisode(w http.ResponseWriter, r *http.Request) {
	ref, ok := episodeRef(w, r)
	if !ok {
		return
	}

	res := h.podcasts.DeleteEpisode(r.Context(), ref)
	if !res.OK {
		respondWithFailure(w, r, res.Error)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}

func episodeRef(w http.ResponseWriter, r *http.Request) (service.EpisodeRef, bool) {
	podcastID, ok := handlePathID(w, r, "id")
	if !ok {
		return service.EpisodeRef{}, false
	}
	episodeID, ok := handlePathID(w, r, "episodeId")
	if !ok {
		return service.EpisodeRef{}, false
	}
	return service.EpisodeRef{PodcastID: podcastID, EpisodeID: episodeID}, true
}
