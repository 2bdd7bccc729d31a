package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/budgetbook/pkg/response"
)

// Handler handles HTTP requests for transaction operations
type Handler struct {
	service *Service
}

// NewHandler creates a new transaction handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for transaction endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /transactions
// @Summary      Create a transaction
// @Description  Record a personal income or expense
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request body CreateTransactionRequest true "Transaction creation request"
// @Success      201 {object} response.APIResponse{data=TransactionResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /transactions [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	txn, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidType) || errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrInvalidDate) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create transaction")
		return
	}

	response.JSON(w, http.StatusCreated, txn.ToResponse())
}

// List handles GET /transactions
// @Summary      List transactions
// @Description  Get a paginated list of transactions, optionally filtered by month
// @Tags         transactions
// @Produce      json
// @Param        month query string false "Month filter (YYYY-MM)"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]TransactionResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /transactions [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	txns, total, err := h.service.List(r.Context(), month, page, perPage)
	if err != nil {
		if errors.Is(err, ErrInvalidMonth) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list transactions")
		return
	}

	txnResponses := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		txnResponses[i] = t.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, txnResponses, meta)
}

// GetByID handles GET /transactions/{id}
// @Summary      Get transaction by ID
// @Description  Get a single transaction
// @Tags         transactions
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Success      200 {object} response.APIResponse{data=TransactionResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /transactions/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid transaction ID")
		return
	}

	txn, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get transaction")
		return
	}

	response.JSON(w, http.StatusOK, txn.ToResponse())
}

// Update handles PUT /transactions/{id}
// @Summary      Update a transaction
// @Description  Update one or more fields of an existing transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Param        request body UpdateTransactionRequest true "Transaction update request"
// @Success      200 {object} response.APIResponse{data=TransactionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /transactions/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid transaction ID")
		return
	}

	var req UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	txn, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrInvalidType) || errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrInvalidDate) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update transaction")
		return
	}

	response.JSON(w, http.StatusOK, txn.ToResponse())
}

// Delete handles DELETE /transactions/{id}
// @Summary      Delete a transaction
// @Description  Delete a transaction
// @Tags         transactions
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /transactions/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid transaction ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete transaction")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}
