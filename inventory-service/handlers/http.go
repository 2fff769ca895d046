package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/evermart/order-system/inventory-service/application"
	"github.com/evermart/order-system/inventory-service/domain"
)

// InventoryHandlers contains inventory HTTP handlers
type InventoryHandlers struct {
	getInventory *application.GetInventory
}

// NewInventoryHandlers creates new inventory handlers
func NewInventoryHandlers(getInventory *application.GetInventory) *InventoryHandlers {
	return &InventoryHandlers{getInventory: getInventory}
}

type inventoryItemResponse struct {
	ID        string    `json:"id"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	IsChecked bool      `json:"is_checked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListInventory handles inventory listing requests
func (h *InventoryHandlers) ListInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.getInventory.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]inventoryItemResponse, len(items))
	for i, item := range items {
		response[i] = toItemResponse(item)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetInventoryItem handles single item retrieval requests
func (h *InventoryHandlers) GetInventoryItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	item, err := h.getInventory.ByProductID(r.Context(), productID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "Inventory item not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toItemResponse(item))
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", h.ListInventory)
		r.Get("/{productId}", h.GetInventoryItem)
	})
}

func toItemResponse(item *domain.InventoryItem) inventoryItemResponse {
	return inventoryItemResponse{
		ID:        item.ID.String(),
		ProductID: item.ProductID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		IsChecked: item.IsChecked,
		CreatedAt: item.Timestamps.CreatedAt,
		UpdatedAt: item.Timestamps.UpdatedAt,
	}
}
