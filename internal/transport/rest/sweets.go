package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
	"github.com/heartmarshall/sweetshop-backend/internal/service/catalog"
	"github.com/heartmarshall/sweetshop-backend/internal/service/inventory"
	"github.com/heartmarshall/sweetshop-backend/pkg/ctxutil"
)

type catalogService interface {
	Create(ctx context.Context, input catalog.SweetInput) (*domain.Sweet, error)
	List(ctx context.Context, input catalog.ListInput) ([]domain.Sweet, error)
	Search(ctx context.Context, input catalog.SearchInput) ([]domain.Sweet, error)
	Get(ctx context.Context, id int64) (*domain.Sweet, error)
	Update(ctx context.Context, id int64, input catalog.SweetInput) (*domain.Sweet, error)
}

type inventoryService interface {
	Purchase(ctx context.Context, actor *domain.User, input inventory.StockInput) (*domain.Sweet, error)
	Restock(ctx context.Context, actor *domain.User, input inventory.StockInput) (*domain.Sweet, error)
	DeleteItem(ctx context.Context, actor *domain.User, id int64) error
}

// SweetHandler serves catalog and inventory REST endpoints.
// Every route expects middleware.Auth upstream.
type SweetHandler struct {
	catalog   catalogService
	inventory inventoryService
	log       *slog.Logger
}

// NewSweetHandler creates a SweetHandler.
func NewSweetHandler(cat catalogService, inv inventoryService, logger *slog.Logger) *SweetHandler {
	return &SweetHandler{
		catalog:   cat,
		inventory: inv,
		log:       logger.With("handler", "sweets"),
	}
}

type sweetRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity"`
}

type sweetResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type messageResponse struct {
	Message string `json:"message"`
}

var sweetErrors = errorDetails{
	conflict: "Sweet with this name already exists",
	notFound: "Sweet not found",
}

// Create handles POST /api/sweets/create.
func (h *SweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.readSweet(w, r)
	if !ok {
		return
	}

	sweet, err := h.catalog.Create(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err, sweetErrors)
		return
	}

	writeJSON(w, http.StatusOK, toSweetResponse(sweet))
}

// List handles GET /api/sweets?skip=&limit=.
func (h *SweetHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		input catalog.ListInput
		errs  []domain.FieldError
	)
	input.Skip = queryInt(r, "skip", &errs)
	input.Limit = queryInt(r, "limit", &errs)
	if len(errs) > 0 {
		writeDomainError(w, r, h.log, domain.NewValidationErrors(errs), sweetErrors)
		return
	}

	sweets, err := h.catalog.List(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err, sweetErrors)
		return
	}

	writeJSON(w, http.StatusOK, toSweetResponses(sweets))
}

// Search handles GET /api/sweets/search?name=&category=&min_price=&max_price=.
func (h *SweetHandler) Search(w http.ResponseWriter, r *http.Request) {
	var (
		input catalog.SearchInput
		errs  []domain.FieldError
	)
	input.Name = queryString(r, "name")
	input.Category = queryString(r, "category")
	input.MinPrice = queryFloat(r, "min_price", &errs)
	input.MaxPrice = queryFloat(r, "max_price", &errs)
	if len(errs) > 0 {
		writeDomainError(w, r, h.log, domain.NewValidationErrors(errs), sweetErrors)
		return
	}

	sweets, err := h.catalog.Search(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err, sweetErrors)
		return
	}

	writeJSON(w, http.StatusOK, toSweetResponses(sweets))
}

// Get handles GET /api/sweets/{id}.
func (h *SweetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	sweet, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err, sweetErrors)
		return
	}

	writeJSON(w, http.StatusOK, toSweetResponse(sweet))
}

// Update handles PUT /api/sweets/{id}.
func (h *SweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	input, ok := h.readSweet(w, r)
	if !ok {
		return
	}

	sweet, err := h.catalog.Update(r.Context(), id, input)
	if err != nil {
		writeDomainError(w, r, h.log, err, sweetErrors)
		return
	}

	writeJSON(w, http.StatusOK, toSweetResponse(sweet))
}

// Purchase handles POST /api/sweets/{id}/purchase.
func (h *SweetHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	h.moveStock(w, r, h.inventory.Purchase)
}

// Restock handles POST /api/sweets/{id}/restock.
func (h *SweetHandler) Restock(w http.ResponseWriter, r *http.Request) {
	h.moveStock(w, r, h.inventory.Restock)
}

// Delete handles DELETE /api/sweets/{id}. Admin only.
func (h *SweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	actor, _ := ctxutil.UserFromCtx(r.Context())
	if err := h.inventory.DeleteItem(r.Context(), actor, id); err != nil {
		writeDomainError(w, r, h.log, err, sweetErrors)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Sweet deleted successfully"})
}

type stockFunc func(ctx context.Context, actor *domain.User, input inventory.StockInput) (*domain.Sweet, error)

func (h *SweetHandler) moveStock(w http.ResponseWriter, r *http.Request, move stockFunc) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req quantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeInvalidBody(w)
		return
	}
	if req.Quantity == nil {
		writeDomainError(w, r, h.log, domain.NewValidationError("quantity", "required"), sweetErrors)
		return
	}

	actor, _ := ctxutil.UserFromCtx(r.Context())
	sweet, err := move(r.Context(), actor, inventory.StockInput{SweetID: id, Quantity: *req.Quantity})
	if err != nil {
		writeDomainError(w, r, h.log, err, sweetErrors)
		return
	}

	writeJSON(w, http.StatusOK, toSweetResponse(sweet))
}

// readSweet decodes a full sweet body. Every field must be present.
func (h *SweetHandler) readSweet(w http.ResponseWriter, r *http.Request) (catalog.SweetInput, bool) {
	var req sweetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeInvalidBody(w)
		return catalog.SweetInput{}, false
	}

	var errs []domain.FieldError
	for _, f := range []struct {
		name    string
		missing bool
	}{
		{"name", req.Name == nil},
		{"category", req.Category == nil},
		{"price", req.Price == nil},
		{"quantity", req.Quantity == nil},
	} {
		if f.missing {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "required"})
		}
	}
	if len(errs) > 0 {
		writeDomainError(w, r, h.log, domain.NewValidationErrors(errs), sweetErrors)
		return catalog.SweetInput{}, false
	}

	return catalog.SweetInput{
		Name:     *req.Name,
		Category: *req.Category,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	}, true
}

func (h *SweetHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeDomainError(w, r, h.log, domain.NewValidationError("id", "must be a positive integer"), sweetErrors)
		return 0, false
	}
	return id, true
}

func queryString(r *http.Request, key string) *string {
	if !r.URL.Query().Has(key) {
		return nil
	}
	v := r.URL.Query().Get(key)
	return &v
}

func queryInt(r *http.Request, key string, errs *[]domain.FieldError) *int {
	raw := queryString(r, key)
	if raw == nil || *raw == "" {
		return nil
	}
	v, err := strconv.Atoi(*raw)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: key, Message: "must be an integer"})
		return nil
	}
	return &v
}

func queryFloat(r *http.Request, key string, errs *[]domain.FieldError) *float64 {
	raw := queryString(r, key)
	if raw == nil || *raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: key, Message: "must be a number"})
		return nil
	}
	return &v
}

func toSweetResponse(s *domain.Sweet) sweetResponse {
	return sweetResponse{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Price:    s.Price,
		Quantity: s.Quantity,
	}
}

func toSweetResponses(sweets []domain.Sweet) []sweetResponse {
	out := make([]sweetResponse, 0, len(sweets))
	for i := range sweets {
		out = append(out, toSweetResponse(&sweets[i]))
	}
	return out
}
