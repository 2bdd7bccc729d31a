package snapshot

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/budgetbook/pkg/response"
)

// Handler handles HTTP requests for snapshot operations
type Handler struct {
	service *Service
}

// NewHandler creates a new snapshot handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for snapshot endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/export", h.Export)
	r.Post("/import", h.Import)

	return r
}

// Export handles GET /snapshot/export
// @Summary      Export all data
// @Description  Download a full snapshot of transactions, budgets, groups, expenses and settlements
// @Tags         snapshot
// @Produce      json
// @Success      200 {object} response.APIResponse{data=Snapshot}
// @Router       /snapshot/export [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Export(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to export snapshot")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="budgetbook-snapshot.json"`)
	response.JSON(w, http.StatusOK, snap)
}

// Import handles POST /snapshot/import
// @Summary      Import a snapshot
// @Description  Replace all stored data with the uploaded snapshot
// @Tags         snapshot
// @Accept       json
// @Produce      json
// @Param        request body Snapshot true "Snapshot to restore"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Router       /snapshot/import [post]
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	var snap Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		response.BadRequest(w, "Invalid snapshot body")
		return
	}

	if err := h.service.Import(r.Context(), &snap); err != nil {
		if errors.Is(err, ErrEmptySnapshot) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to import snapshot")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Snapshot imported successfully"})
}
