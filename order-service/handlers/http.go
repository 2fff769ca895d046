package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/evermart/order-system/order-service/application"
	"github.com/evermart/order-system/order-service/domain"
	"github.com/evermart/order-system/shared/models"
)

// OrderHandlers contains order HTTP handlers
type OrderHandlers struct {
	createProduct  *application.CreateProduct
	getProduct     *application.GetProduct
	getSagaState   *application.GetSagaState
	getSagaHistory *application.GetSagaHistory
}

// NewOrderHandlers creates new order handlers
func NewOrderHandlers(
	createProduct *application.CreateProduct,
	getProduct *application.GetProduct,
	getSagaState *application.GetSagaState,
	getSagaHistory *application.GetSagaHistory,
) *OrderHandlers {
	return &OrderHandlers{
		createProduct:  createProduct,
		getProduct:     getProduct,
		getSagaState:   getSagaState,
		getSagaHistory: getSagaHistory,
	}
}

type productResponse struct {
	ID        string       `json:"id"`
	ProductID int64        `json:"product_id"`
	Name      string       `json:"name"`
	Quantity  int          `json:"quantity"`
	Price     models.Money `json:"price"`
	CreatedAt time.Time    `json:"created_at"`
}

type sagaResponse struct {
	CorrelationID             string       `json:"correlation_id"`
	CurrentState              string       `json:"current_state"`
	PreviousState             string       `json:"previous_state"`
	ProductID                 int64        `json:"product_id"`
	ProductName               string       `json:"product_name"`
	ProductQuantity           int          `json:"product_quantity"`
	Price                     models.Money `json:"price"`
	IsQualityGood             bool         `json:"is_quality_good"`
	ProductCreatedAt          time.Time    `json:"product_created_at"`
	InventoryCheckRequestedAt *time.Time   `json:"inventory_check_requested_at,omitempty"`
	InventoryCheckCompletedAt *time.Time   `json:"inventory_check_completed_at,omitempty"`
	Version                   int          `json:"version"`
}

type transitionResponse struct {
	PreviousState  string    `json:"previous_state"`
	CurrentState   string    `json:"current_state"`
	Description    string    `json:"description"`
	TransitionedAt time.Time `json:"transitioned_at"`
}

// CreateProduct handles product creation requests
func (h *OrderHandlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var cmd application.CreateProductCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.createProduct.Execute(r.Context(), &cmd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toProductResponse(product))
}

// GetProduct handles product retrieval requests
func (h *OrderHandlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "Product ID is required", http.StatusBadRequest)
		return
	}

	product, err := h.getProduct.Execute(r.Context(), models.ID(id))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(product))
}

// GetSaga handles saga state retrieval requests
func (h *OrderHandlers) GetSaga(w http.ResponseWriter, r *http.Request) {
	correlationID := chi.URLParam(r, "correlationId")
	if correlationID == "" {
		http.Error(w, "Correlation ID is required", http.StatusBadRequest)
		return
	}

	instance, err := h.getSagaState.Execute(r.Context(), models.ID(correlationID))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if instance == nil {
		http.Error(w, "Saga not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toSagaResponse(instance))
}

// GetSagaHistory handles saga history retrieval requests
func (h *OrderHandlers) GetSagaHistory(w http.ResponseWriter, r *http.Request) {
	correlationID := chi.URLParam(r, "correlationId")
	if correlationID == "" {
		http.Error(w, "Correlation ID is required", http.StatusBadRequest)
		return
	}

	records, err := h.getSagaHistory.Execute(r.Context(), models.ID(correlationID))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]transitionResponse, len(records))
	for i, record := range records {
		response[i] = transitionResponse{
			PreviousState:  record.PreviousState.String(),
			CurrentState:   record.CurrentState.String(),
			Description:    record.Description,
			TransitionedAt: record.TransitionedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// RegisterRoutes registers order routes
func (h *OrderHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.CreateProduct)
		r.Get("/{id}", h.GetProduct)
	})
	r.Route("/sagas", func(r chi.Router) {
		r.Get("/{correlationId}", h.GetSaga)
		r.Get("/{correlationId}/history", h.GetSagaHistory)
	})
}

func toProductResponse(product *domain.Product) productResponse {
	return productResponse{
		ID:        product.ID.String(),
		ProductID: product.ProductID,
		Name:      product.Name,
		Quantity:  product.Quantity,
		Price:     product.Price,
		CreatedAt: product.CreatedAt,
	}
}

func toSagaResponse(instance *domain.OrderSaga) sagaResponse {
	snapshot := instance.Snapshot()
	response := sagaResponse{
		CorrelationID:    snapshot.CorrelationID.String(),
		CurrentState:     snapshot.CurrentState.String(),
		PreviousState:    snapshot.PreviousState.String(),
		ProductID:        instance.ProductID,
		ProductName:      instance.ProductName,
		ProductQuantity:  instance.ProductQuantity,
		Price:            instance.Price,
		IsQualityGood:    instance.IsQualityGood,
		ProductCreatedAt: instance.ProductCreatedAt,
		Version:          instance.Version.Value,
	}
	if !instance.InventoryCheckRequestedAt.IsZero() {
		t := instance.InventoryCheckRequestedAt
		response.InventoryCheckRequestedAt = &t
	}
	if !instance.InventoryCheckCompletedAt.IsZero() {
		t := instance.InventoryCheckCompletedAt
		response.InventoryCheckCompletedAt = &t
	}
	return response
}
