package vote

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/votes"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/metrics"
)

// CastVoteHandler handles vote casting
type CastVoteHandler struct {
	service   votes.Service
	collector *metrics.Collector
}

// NewCastVoteHandler creates a new cast vote handler
func NewCastVoteHandler(service votes.Service, collector *metrics.Collector) *CastVoteHandler {
	return &CastVoteHandler{
		service:   service,
		collector: collector,
	}
}

type castVoteRequest struct {
	Direction *int `json:"direction"`
}

// HandleCastVote casts or changes the caller's vote on a post
// POST /api/posts/{id}/vote
//
// Request body: { "direction": 1 | -1 }
func (h *CastVoteHandler) HandleCastVote(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || postID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if req.Direction == nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "direction is required")
		return
	}

	userID := middleware.UserID(r)

	if err := h.service.CastVote(r.Context(), userID, postID, *req.Direction); err != nil {
		handleServiceError(w, err)
		return
	}

	if h.collector != nil {
		value := votes.Upvote
		if *req.Direction == votes.Downvote {
			value = votes.Downvote
		}
		h.collector.RecordVote(value)
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
