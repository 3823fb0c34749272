package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"remedial/internal/gateway"
	"remedial/internal/model"
	"remedial/internal/repository"
)

// OrderInput carries the class order intake fields.
type OrderInput struct {
	FullName      string
	Email         string
	Phone         string
	BirthPlace    string
	BirthDate     string
	Gender        string
	School        string
	Instagram     string
	Address       string
	UserID        string
	Motivation    string
	PortfolioFile string
	PortfolioURL  string
	Amount        decimal.Decimal
}

// OrderService handles class order intake. Token issuance gates persistence:
// no order row exists unless the gateway issued a token for it.
type OrderService interface {
	ListOrders(ctx context.Context) ([]model.ClassOrder, error)
	CreateOrder(ctx context.Context, input OrderInput) (token string, order *model.ClassOrder, err error)
}

type orderService struct {
	orderRepo repository.ClassOrderRepository
	tokens    gateway.TokenIssuer
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.ClassOrderRepository, tokens gateway.TokenIssuer) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		tokens:    tokens,
	}
}

// ListOrders returns all persisted orders.
func (s *orderService) ListOrders(ctx context.Context) ([]model.ClassOrder, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// CreateOrder requests a transaction token from the gateway, then persists the
// order with the token embedded. The order ID is assigned up front so the
// gateway and the store agree on it.
func (s *orderService) CreateOrder(ctx context.Context, input OrderInput) (string, *model.ClassOrder, error) {
	orderID := uuid.New()

	token, err := s.tokens.CreateTransactionToken(ctx, gateway.TokenRequest{
		OrderID:     orderID.String(),
		GrossAmount: input.Amount.IntPart(),
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
	})
	if err != nil {
		return "", nil, fmt.Errorf("create transaction token: %w", err)
	}

	order := &model.ClassOrder{
		ID:               orderID,
		FullName:         input.FullName,
		Email:            input.Email,
		Phone:            input.Phone,
		BirthPlace:       input.BirthPlace,
		BirthDate:        input.BirthDate,
		Gender:           input.Gender,
		School:           input.School,
		Instagram:        input.Instagram,
		Address:          input.Address,
		UserID:           input.UserID,
		Motivation:       input.Motivation,
		PortfolioFile:    input.PortfolioFile,
		PortfolioURL:     input.PortfolioURL,
		Amount:           input.Amount,
		TransactionToken: token,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return "", nil, fmt.Errorf("create order: %w", err)
	}

	return token, order, nil
}
