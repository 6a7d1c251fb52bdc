package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/response"

	"github.com/gorilla/mux"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
}

func NewOrderHandler(orderUsecase usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	board, err := h.orderUsecase.MyOrders(r.Context())
	if err != nil {
		h.respondError(w, err, "Failed to get orders")
		return
	}
	response.Success(w, http.StatusOK, "Orders retrieved successfully", board)
}

func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	payment, err := h.orderUsecase.Pay(r.Context(), orderID)
	if err != nil {
		h.respondError(w, err, "Failed to create payment")
		return
	}
	response.Success(w, http.StatusCreated, "Payment created successfully", payment)
}

func (h *OrderHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	payment, err := h.orderUsecase.ConfirmPayment(r.Context(), orderID)
	if err != nil {
		h.respondError(w, err, "Failed to confirm payment")
		return
	}
	response.Success(w, http.StatusOK, "Payment confirmed successfully", payment)
}

func (h *OrderHandler) GetDeliveryBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.orderUsecase.DeliveryBoard(r.Context())
	if err != nil {
		h.respondError(w, err, "Failed to get deliveries")
		return
	}
	response.Success(w, http.StatusOK, "Deliveries retrieved successfully", board)
}

func (h *OrderHandler) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	deliveryID := mux.Vars(r)["id"]
	if deliveryID == "" {
		response.Error(w, http.StatusBadRequest, "Invalid delivery ID")
		return
	}

	if err := h.orderUsecase.ConfirmDelivery(r.Context(), deliveryID); err != nil {
		h.respondError(w, err, "Failed to confirm delivery")
		return
	}
	response.Success(w, http.StatusOK, "Delivery confirmed successfully", nil)
}

func (h *OrderHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, usecase.ErrNotAuthenticated) {
		response.Unauthorized(w, "Not authenticated")
		return
	}
	relayUpstreamError(w, err, fallback)
}
