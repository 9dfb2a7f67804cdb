package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/sundial-labs/sundial-engine/pkg/models"
	"github.com/sundial-labs/sundial-engine/pkg/prompts"
	"github.com/sundial-labs/sundial-engine/pkg/services"
)

// CommentaryHandler handles schedule commentary requests.
type CommentaryHandler struct {
	commentaryService services.CommentaryService
	logger            *zap.Logger
}

// NewCommentaryHandler creates a new commentary handler.
func NewCommentaryHandler(commentaryService services.CommentaryService, logger *zap.Logger) *CommentaryHandler {
	return &CommentaryHandler{
		commentaryService: commentaryService,
		logger:            logger,
	}
}

// RegisterRoutes registers the commentary handler's routes on the given mux.
func (h *CommentaryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/commentary", h.Commentary)
}

type commentaryRequest struct {
	Slots     []models.ScheduleSlot    `json:"slots"`
	Conflicts []models.Conflict        `json:"conflicts"`
	Synergies []models.DetectedSynergy `json:"synergies"`
	Language  string                   `json:"language"`
}

// Commentary handles POST /api/commentary. The response always carries text;
// provider failures degrade to the canned fallback inside the service.
func (h *CommentaryHandler) Commentary(w http.ResponseWriter, r *http.Request) {
	var req commentaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if len(req.Slots) == 0 {
		if err := ErrorResponse(w, http.StatusBadRequest, "empty_schedule", "Schedule slots are required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	commentary := h.commentaryService.Commentary(r.Context(), &prompts.CommentaryInput{
		Slots:     req.Slots,
		Conflicts: req.Conflicts,
		Synergies: req.Synergies,
	}, req.Language)

	if err := WriteJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data:    map[string]string{"commentary": commentary},
	}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
