package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ssv8317/canteen-ordering/internal/core/domain"
	"github.com/ssv8317/canteen-ordering/internal/core/service"
	"github.com/ssv8317/canteen-ordering/internal/port"
)

type HTTPHandler struct {
	orders  *service.OrderService
	carts   *service.CartService
	catalog *service.CatalogService
	auth    port.Authenticator
}

func NewHTTPHandler(orders *service.OrderService, carts *service.CartService, catalog *service.CatalogService, auth port.Authenticator) *HTTPHandler {
	return &HTTPHandler{
		orders:  orders,
		carts:   carts,
		catalog: catalog,
		auth:    auth,
	}
}

// Routes builds the full HTTP surface. The submit/list order pair is the
// persistence contract; catalog, cart, and admin routes sit alongside it.
func (h *HTTPHandler) Routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(recoverMiddleware)
	r.Use(corsMiddleware(allowedOrigins))

	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/orders", h.ListOrders)
		r.Post("/orders", h.SubmitOrder)

		r.Get("/stalls", h.ListStalls)
		r.Get("/stalls/{stallID}/menu", h.StallMenu)

		r.Route("/cart", func(r chi.Router) {
			r.Use(sessionMiddleware)
			r.Get("/", h.GetCart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddCartItem)
			r.Put("/items/{itemID}", h.UpdateCartItem)
			r.Delete("/items/{itemID}", h.RemoveCartItem)
			r.Put("/pickup-time", h.SetPickupTime)
			r.Post("/checkout", h.Checkout)
		})

		r.With(h.requireAdmin).Get("/admin/orders", h.ListOrders)
	})

	return r
}

type orderRequest struct {
	StudentName string `json:"studentName"`
	Stall       string `json:"stall"`
	Item        string `json:"item"`
	Quantity    int    `json:"quantity"`
}

type orderResponse struct {
	ID          string    `json:"id"`
	StudentName string    `json:"studentName"`
	Stall       string    `json:"stall"`
	Item        string    `json:"item"`
	Quantity    int       `json:"quantity"`
	OrderTime   time.Time `json:"orderTime"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toOrderResponse(order domain.Order) orderResponse {
	return orderResponse{
		ID:          order.ID,
		StudentName: order.StudentName,
		Stall:       order.Stall,
		Item:        order.Item,
		Quantity:    order.Quantity,
		OrderTime:   order.OrderTime,
	}
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SubmitOrder decodes only the four client fields; any id or orderTime in
// the body is discarded and replaced server-side.
func (h *HTTPHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orders.Submit(r.Context(), service.OrderDraft{
		StudentName: req.StudentName,
		Stall:       req.Stall,
		Item:        req.Item,
		Quantity:    req.Quantity,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		zap.L().Sugar().Errorf("submit order: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to place order")
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		zap.L().Sugar().Errorf("list orders: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}
	writeJSON(w, http.StatusOK, out)
}

type stallResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Image       string   `json:"image"`
}

type menuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	IsVeg       bool    `json:"isVeg"`
	Rating      float64 `json:"rating"`
	Popular     bool    `json:"popular"`
}

func (h *HTTPHandler) ListStalls(w http.ResponseWriter, r *http.Request) {
	stalls := h.catalog.Stalls()
	out := make([]stallResponse, 0, len(stalls))
	for _, stall := range stalls {
		out = append(out, stallResponse(stall))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) StallMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.Menu(chi.URLParam(r, "stallID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "stall not found")
		return
	}

	out := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, menuItemResponse(item))
	}
	writeJSON(w, http.StatusOK, out)
}

type addCartItemRequest struct {
	StallID  string `json:"stallId"`
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type pickupTimeRequest struct {
	PickupTime string `json:"pickupTime"`
}

type checkoutRequest struct {
	StudentName string `json:"studentName"`
}

type cartLineResponse struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Stall    string  `json:"stall"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type cartResponse struct {
	Items      []cartLineResponse `json:"items"`
	PickupTime string             `json:"pickupTime"`
	Total      float64            `json:"total"`
	ItemCount  int                `json:"itemCount"`
}

func toCartResponse(cart domain.Cart) cartResponse {
	items := make([]cartLineResponse, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, cartLineResponse(line))
	}
	return cartResponse{
		Items:      items,
		PickupTime: cart.PickupTime,
		Total:      cart.Total(),
		ItemCount:  cart.ItemCount(),
	}
}

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.Get(r.Context(), sessionIDFromContext(r.Context()))
	if err != nil {
		zap.L().Sugar().Errorf("get cart: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

// AddCartItem resolves the menu item server-side so cart lines carry
// catalog prices, not client-supplied ones.
func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, stall, err := h.catalog.Item(req.StallID, req.ItemID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	cart, err := h.carts.AddItem(r.Context(), sessionIDFromContext(r.Context()), domain.CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Stall:    stall.Name,
		Price:    item.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCartItem) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		zap.L().Sugar().Errorf("add cart item: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *HTTPHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart, err := h.carts.UpdateQuantity(r.Context(), sessionIDFromContext(r.Context()), chi.URLParam(r, "itemID"), req.Quantity)
	if err != nil {
		zap.L().Sugar().Errorf("update cart item: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.RemoveItem(r.Context(), sessionIDFromContext(r.Context()), chi.URLParam(r, "itemID"))
	if err != nil {
		zap.L().Sugar().Errorf("remove cart item: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *HTTPHandler) SetPickupTime(w http.ResponseWriter, r *http.Request) {
	var req pickupTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart, err := h.carts.SetPickupTime(r.Context(), sessionIDFromContext(r.Context()), req.PickupTime)
	if err != nil {
		zap.L().Sugar().Errorf("set pickup time: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Clear(r.Context(), sessionIDFromContext(r.Context())); err != nil {
		zap.L().Sugar().Errorf("clear cart: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to clear cart")
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(domain.Cart{}))
}

type checkoutResponse struct {
	Orders []orderResponse `json:"orders"`
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	orders, err := h.carts.Checkout(r.Context(), sessionIDFromContext(r.Context()), req.StudentName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			writeError(w, http.StatusBadRequest, "cart is empty")
		case errors.Is(err, service.ErrInvalidOrder):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			zap.L().Sugar().Errorf("checkout: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to place order")
		}
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}
	writeJSON(w, http.StatusCreated, checkoutResponse{Orders: out})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
