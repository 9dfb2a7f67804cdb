package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/sundial-labs/sundial-engine/pkg/models"
	"github.com/sundial-labs/sundial-engine/pkg/services"
)

// StackHandler handles stack planning HTTP requests: schedules, conflicts,
// graphs, and catalog listing.
type StackHandler struct {
	stackService services.StackService
	logger       *zap.Logger
}

// NewStackHandler creates a new stack handler.
func NewStackHandler(stackService services.StackService, logger *zap.Logger) *StackHandler {
	return &StackHandler{
		stackService: stackService,
		logger:       logger,
	}
}

// RegisterRoutes registers the stack handler's routes on the given mux.
func (h *StackHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/schedule", h.Schedule)
	mux.HandleFunc("POST /api/conflicts", h.Conflicts)
	mux.HandleFunc("POST /api/graph", h.Graph)
	mux.HandleFunc("POST /api/products/resolve", h.ResolveProduct)
	mux.HandleFunc("GET /api/products", h.ListProducts)
	mux.HandleFunc("GET /api/nutrients", h.ListNutrients)
}

type scheduleRequest struct {
	ProductIDs  []string           `json:"product_ids"`
	Products    []models.Product   `json:"products,omitempty"`
	Constraints models.Constraints `json:"constraints"`
}

type selectionRequest struct {
	ProductIDs []string `json:"product_ids"`
}

// Schedule handles POST /api/schedule.
func (h *StackHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	plan, err := h.stackService.BuildPlan(r.Context(), req.ProductIDs, req.Products, req.Constraints)
	if err != nil {
		h.logger.Error("Failed to build plan", zap.Error(err))
		status, code := statusFor(err)
		h.writeError(w, status, code, err.Error())
		return
	}

	h.writeData(w, plan)
}

// Conflicts handles POST /api/conflicts.
func (h *StackHandler) Conflicts(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	conflicts, synergies, err := h.stackService.DetectConflicts(r.Context(), req.ProductIDs)
	if err != nil {
		h.logger.Error("Failed to detect conflicts", zap.Error(err))
		status, code := statusFor(err)
		h.writeError(w, status, code, err.Error())
		return
	}

	h.writeData(w, map[string]any{
		"conflicts": conflicts,
		"synergies": synergies,
	})
}

// Graph handles POST /api/graph.
func (h *StackHandler) Graph(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	graph, err := h.stackService.BuildGraph(r.Context(), req.ProductIDs)
	if err != nil {
		h.logger.Error("Failed to build graph", zap.Error(err))
		status, code := statusFor(err)
		h.writeError(w, status, code, err.Error())
		return
	}

	h.writeData(w, graph)
}

type resolveProductRequest struct {
	Query string `json:"query"`
}

// ResolveProduct handles POST /api/products/resolve: fuzzy-match a free-text
// name against the catalog.
func (h *StackHandler) ResolveProduct(w http.ResponseWriter, r *http.Request) {
	var req resolveProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Query is required")
		return
	}

	product := h.stackService.Catalog().FindProduct(req.Query)
	if product == nil {
		h.writeError(w, http.StatusNotFound, "not_found", "No product matches the query")
		return
	}

	h.writeData(w, product)
}

// ListProducts handles GET /api/products.
func (h *StackHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	h.writeData(w, h.stackService.Catalog().Products())
}

// ListNutrients handles GET /api/nutrients.
func (h *StackHandler) ListNutrients(w http.ResponseWriter, r *http.Request) {
	h.writeData(w, h.stackService.Catalog().Nutrients())
}

func (h *StackHandler) writeData(w http.ResponseWriter, data any) {
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: data}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *StackHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	if err := ErrorResponse(w, status, code, message); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
