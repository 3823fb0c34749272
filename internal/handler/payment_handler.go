package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"remedial/internal/service"
)

// PaymentHandler handles class order and payment endpoints.
//
// These endpoints keep an always-200 contract: failures are reported through
// the boolean status flag in the body, never through the HTTP status code.
// Callers must check the flag.
type PaymentHandler struct {
	orderService service.OrderService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(orderService service.OrderService) *PaymentHandler {
	return &PaymentHandler{orderService: orderService}
}

// OrderRequest represents a class order intake request.
type OrderRequest struct {
	FullName      string `json:"full_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	BirthPlace    string `json:"birth_place"`
	BirthDate     string `json:"birth_date"`
	Gender        string `json:"gender"`
	School        string `json:"school"`
	Instagram     string `json:"instagram"`
	Address       string `json:"address"`
	UserID        string `json:"user_id"`
	Motivation    string `json:"motivation"`
	PortfolioFile string `json:"portfolio_file"`
	PortfolioURL  string `json:"portfolio_url"`
	Amount        string `json:"amount" validate:"required"`
}

// OrderResponse represents the boolean-status order envelope.
type OrderResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data"`
}

// ListOrders godoc
// @Summary List all class orders
// @Tags payment
// @Produce json
// @Success 200 {object} OrderResponse
// @Router /orders [get]
func (h *PaymentHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderService.ListOrders(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, OrderResponse{
			Status:  false,
			Message: "failed to list orders: " + err.Error(),
			Data:    []interface{}{},
		})
	}

	return c.JSON(http.StatusOK, OrderResponse{
		Status:  true,
		Message: "orders listed successfully",
		Data:    orders,
	})
}

// CreateOrder godoc
// @Summary Create a class order backed by a gateway transaction token
// @Tags payment
// @Accept json
// @Produce json
// @Param request body OrderRequest true "Order data"
// @Success 200 {object} OrderResponse
// @Router /payment [post]
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, OrderResponse{
			Status:  false,
			Message: "order failed: invalid request body",
			Data:    []interface{}{},
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, OrderResponse{
			Status:  false,
			Message: "order failed: " + err.Error(),
			Data:    []interface{}{},
		})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return c.JSON(http.StatusOK, OrderResponse{
			Status:  false,
			Message: "order failed: invalid amount",
			Data:    []interface{}{},
		})
	}

	token, order, err := h.orderService.CreateOrder(c.Request().Context(), service.OrderInput{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		BirthPlace:    req.BirthPlace,
		BirthDate:     req.BirthDate,
		Gender:        req.Gender,
		School:        req.School,
		Instagram:     req.Instagram,
		Address:       req.Address,
		UserID:        req.UserID,
		Motivation:    req.Motivation,
		PortfolioFile: req.PortfolioFile,
		PortfolioURL:  req.PortfolioURL,
		Amount:        amount,
	})
	if err != nil {
		return c.JSON(http.StatusOK, OrderResponse{
			Status:  false,
			Message: "order failed: " + err.Error(),
			Data:    []interface{}{},
		})
	}

	return c.JSON(http.StatusOK, OrderResponse{
		Status:  true,
		Message: "order created successfully",
		Token:   token,
		Data:    order,
	})
}
