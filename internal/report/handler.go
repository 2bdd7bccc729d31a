package report

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/budgetbook/pkg/response"
)

// Handler handles HTTP requests for report operations
type Handler struct {
	service *Service
}

// NewHandler creates a new report handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for report endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/summary", h.Summary)

	return r
}

// Summary handles GET /reports/summary
// @Summary      Monthly summary
// @Description  Get income and expense totals plus a per-category breakdown for a month
// @Tags         reports
// @Produce      json
// @Param        month query string true "Month (YYYY-MM)"
// @Success      200 {object} response.APIResponse{data=Summary}
// @Failure      400 {object} response.APIResponse
// @Router       /reports/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		response.BadRequest(w, "month query parameter is required")
		return
	}

	summary, err := h.service.MonthlySummary(r.Context(), month)
	if err != nil {
		if errors.Is(err, ErrInvalidMonth) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to build summary")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}
