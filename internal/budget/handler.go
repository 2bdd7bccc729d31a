package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/budgetbook/pkg/response"
)

// Handler handles HTTP requests for budget operations
type Handler struct {
	service *Service
}

// NewHandler creates a new budget handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for budget endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /budgets
// @Summary      Create a budget
// @Description  Create a spending cap for a category in a month. One budget per category per month.
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        request body CreateBudgetRequest true "Budget creation request"
// @Success      201 {object} response.APIResponse{data=BudgetResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /budgets [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if req.Category == "" {
		response.BadRequest(w, "Category is required")
		return
	}

	budget, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrDuplicateBudget) {
			response.Conflict(w, err.Error())
			return
		}
		if errors.Is(err, ErrInvalidLimit) || errors.Is(err, ErrInvalidMonth) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create budget")
		return
	}

	response.JSON(w, http.StatusCreated, budget)
}

// List handles GET /budgets
// @Summary      List budgets
// @Description  Get budgets with computed spent and remaining amounts, optionally filtered by month
// @Tags         budgets
// @Produce      json
// @Param        month query string false "Month filter (YYYY-MM)"
// @Success      200 {object} response.APIResponse{data=[]BudgetResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /budgets [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	budgets, err := h.service.List(r.Context(), month)
	if err != nil {
		if errors.Is(err, ErrInvalidMonth) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list budgets")
		return
	}

	response.JSON(w, http.StatusOK, budgets)
}

// GetByID handles GET /budgets/{id}
// @Summary      Get budget by ID
// @Description  Get a budget with its computed spent and remaining amounts
// @Tags         budgets
// @Produce      json
// @Param        id path int true "Budget ID"
// @Success      200 {object} response.APIResponse{data=BudgetResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /budgets/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid budget ID")
		return
	}

	budget, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get budget")
		return
	}

	response.JSON(w, http.StatusOK, budget)
}

// Update handles PUT /budgets/{id}
// @Summary      Update a budget
// @Description  Change a budget's limit
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id path int true "Budget ID"
// @Param        request body UpdateBudgetRequest true "Budget update request"
// @Success      200 {object} response.APIResponse{data=BudgetResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /budgets/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid budget ID")
		return
	}

	var req UpdateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	budget, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrInvalidLimit) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update budget")
		return
	}

	response.JSON(w, http.StatusOK, budget)
}

// Delete handles DELETE /budgets/{id}
// @Summary      Delete a budget
// @Description  Delete a budget
// @Tags         budgets
// @Produce      json
// @Param        id path int true "Budget ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /budgets/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid budget ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete budget")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Budget deleted successfully"})
}
